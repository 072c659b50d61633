package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64_RoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		plain string
	}{
		{"empty", ""},
		{"digit", "2"},
		{"decimal", "-3.75"},
		{"ascii_text", "hello world"},
		{"non_ascii", "naïve π ≈ 3.14159"},
		{"raw_bytes", "\x00\x01\xfe\xff"},
		{"newlines", "a\nb\r\nc"},
	}

	var c Base64
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := c.Encode(tc.plain)
			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.plain, decoded)
		})
	}
}

func TestBase64_RoundTrip_RandomBytes(t *testing.T) {
	var c Base64
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(64)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = byte(rng.Intn(256))
		}
		plain := string(buf)

		decoded, err := c.Decode(c.Encode(plain))
		require.NoError(t, err)
		require.Equal(t, plain, decoded, "round trip failed for input of length %d", n)
	}
}

func TestBase64_Decode_Malformed(t *testing.T) {
	var c Base64

	_, err := c.Decode("not base64!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode base64")
}

func TestBase64_Encode_UsesStandardAlphabetWithPadding(t *testing.T) {
	var c Base64

	// "2" encodes to a single sextet plus two padding characters.
	assert.Equal(t, "Mg==", c.Encode("2"))
	assert.Equal(t, "NQ==", c.Encode("5"))
}
