package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm_Success(t *testing.T) {
	orig := randFloat
	randFloat = func() float64 { return 0.1 }
	defer func() { randFloat = orig }()

	conf, err := Confirm("FL", "flight AA100", "Dana Reed")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(conf.ConfirmationCode, "FL-"))
	assert.Len(t, conf.ConfirmationCode, len("FL-")+8)
	assert.Equal(t, "confirmed", conf.Status)
	assert.Equal(t, "flight AA100", conf.Item)
	assert.Equal(t, "Dana Reed", conf.Name)
	assert.Zero(t, conf.Price)
	assert.False(t, conf.BookedAt.IsZero())
}

func TestConfirm_Rejected(t *testing.T) {
	orig := randFloat
	randFloat = func() float64 { return 0.95 }
	defer func() { randFloat = orig }()

	_, err := Confirm("HT", "hotel htl-1001", "Dana Reed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestNewCode_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewCode("TR")
		assert.False(t, seen[code], "codes should not repeat")
		seen[code] = true
	}
}
