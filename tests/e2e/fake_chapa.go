//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// FakeChapa serves the two hosted-checkout endpoints the gateway calls.
type FakeChapa struct {
	srv *httptest.Server

	mu           sync.Mutex
	verifyStatus string
	rejectInit   bool
	initiated    []string
}

func NewFakeChapa(t *testing.T) *FakeChapa {
	t.Helper()

	f := &FakeChapa{verifyStatus: "success"}

	r := gin.New()
	r.POST("/transaction/initialize", f.initialize)
	r.GET("/transaction/verify/:ref", f.verify)

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeChapa) URL() string { return f.srv.URL }

func (f *FakeChapa) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyStatus = "success"
	f.rejectInit = false
	f.initiated = nil
}

// SetVerifyStatus sets the data.status reported for every verification.
func (f *FakeChapa) SetVerifyStatus(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyStatus = status
}

func (f *FakeChapa) RejectInitiation() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectInit = true
}

// Initiated lists the tx_ref of every accepted initialize call.
func (f *FakeChapa) Initiated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.initiated...)
}

func (f *FakeChapa) initialize(c *gin.Context) {
	var body struct {
		TxRef string `json:"tx_ref"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failed", "message": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rejectInit {
		c.JSON(http.StatusOK, gin.H{"status": "failed", "message": "Invalid currency"})
		return
	}
	f.initiated = append(f.initiated, body.TxRef)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Hosted Link",
		"data":    gin.H{"checkout_url": "https://checkout.example.test/" + body.TxRef},
	})
}

func (f *FakeChapa) verify(c *gin.Context) {
	f.mu.Lock()
	status := f.verifyStatus
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Payment details",
		"data": gin.H{
			"id":     "chapa-txn-1",
			"tx_ref": c.Param("ref"),
			"status": status,
		},
	})
}
