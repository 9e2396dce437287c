package payment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const referenceTokenLength = 8

var referencePattern = regexp.MustCompile(`^BK-\d+-[0-9A-F]{8}$`)

// Reference is the external transaction reference shared with the provider.
type Reference string

func NewReference(bookingID int64, token string) Reference {
	return Reference(fmt.Sprintf("BK-%d-%s", bookingID, token))
}

func (r Reference) String() string { return string(r) }

func (r Reference) IsWellFormed() bool {
	return referencePattern.MatchString(string(r))
}

type ReferenceGenerator interface {
	Generate(bookingID int64) Reference
}

type UUIDReferenceGenerator struct{}

func NewUUIDReferenceGenerator() ReferenceGenerator {
	return UUIDReferenceGenerator{}
}

// Generate takes the first 8 hex digits of a random v4 UUID, upper-cased.
func (UUIDReferenceGenerator) Generate(bookingID int64) Reference {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:referenceTokenLength]
	return NewReference(bookingID, token)
}
