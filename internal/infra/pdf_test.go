package infra

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncar(t *testing.T) {
	assert.Equal(t, "curta", truncar("curta", 48))

	// an accented rune sitting on the cut point must survive whole
	longa := strings.Repeat("x", 46) + "ção final"
	cortada := truncar(longa, 48)
	assert.True(t, utf8.ValidString(cortada))
	assert.Equal(t, 48, len([]rune(cortada)))
	assert.True(t, strings.HasSuffix(cortada, "…"))

	// exactly at the limit nothing is cut
	exata := strings.Repeat("é", 48)
	assert.Equal(t, exata, truncar(exata, 48))
}
