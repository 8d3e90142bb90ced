package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todotrack/internal/core/util"
)

func TestCursorRoundTrip(t *testing.T) {
	date := time.Now().Format(time.RFC3339Nano)

	token := util.EncodeCursor(date, 42)

	decodedDate, id, err := util.DecodeCursor(token)

	assert.NoError(t, err)
	assert.Equal(t, date, decodedDate)
	assert.Equal(t, 42, id)
}

func TestDecodeCursor_MalformedToken(t *testing.T) {
	_, _, err := util.DecodeCursor("not-a-cursor")
	assert.Error(t, err)
}

func TestDecodeCursor_TamperedPayload(t *testing.T) {
	token := util.EncodeCursor(time.Now().Format(time.RFC3339Nano), 1)
	forged := "AAAA" + token[4:]

	_, _, err := util.DecodeCursor(forged)
	assert.Error(t, err)
}
