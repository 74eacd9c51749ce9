package order

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"parcelnet/internal/core/domain/model/kernel"
)

// trackingCodePrefix marks codes issued by this network.
const trackingCodePrefix = "DLV"

// trackingCodeAlphabet is the character set of the random segment.
const trackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// trackingCodeRandomLen is the length of the random segment.
const trackingCodeRandomLen = 4

// NewTrackingCode generates the externally visible shipment identifier:
// the issue timestamp in base36, the tail of the seller id, and a random
// segment, e.g. "DLV-MBGZ41K2-D4C8-7Q2F". The random segment keeps codes
// distinct when one seller places several orders within the same
// millisecond.
func NewTrackingCode(sellerID kernel.UUID, issuedAt time.Time) string {
	millis := strconv.FormatInt(issuedAt.UnixMilli(), 36)
	seller := sellerID.String()
	tail := seller[len(seller)-4:]
	return fmt.Sprintf("%s-%s-%s-%s",
		trackingCodePrefix,
		strings.ToUpper(millis),
		strings.ToUpper(tail),
		randomSegment(trackingCodeRandomLen),
	)
}

func randomSegment(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("tracking code entropy unavailable: %v", err))
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = trackingCodeAlphabet[int(b)%len(trackingCodeAlphabet)]
	}
	return string(out)
}
