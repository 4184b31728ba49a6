package decimals

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerOfTen(t *testing.T) {
	for n := int32(-40); n <= 40; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			assert.Equal(t, powerOfTenString(n), PowerOfTen(n).String())
		})
	}
}

// powerOfTenString add zero padding to power of ten string
func powerOfTenString(n int32) string {
	if n < 0 {
		return "0." + strings.Repeat("0", int(-n-1)) + "1"
	}
	return "1" + strings.Repeat("0", int(n))
}
