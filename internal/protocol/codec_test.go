package protocol

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Request
		wantErr error
	}{
		{
			name:  "icon with newline",
			input: []byte("ihan\n"),
			want:  Request{Tag: TagIcon, Payload: []byte("han\n")},
		},
		{
			name:  "lang query",
			input: []byte("l"),
			want:  Request{Tag: TagLang, Payload: []byte{}},
		},
		{
			name:  "hanja key",
			input: []byte("h가"),
			want:  Request{Tag: TagHanja, Payload: []byte("가")},
		},
		{
			name:  "unknown tag passes through",
			input: []byte("zabc"),
			want:  Request{Tag: Tag('z'), Payload: []byte("abc")},
		},
		{
			name:    "empty",
			input:   nil,
			wantErr: ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRoundTripsBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Request{Tag: TagHanja, Payload: []byte("가")}))
	assert.Equal(t, "h가", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEncodeWriteError(t *testing.T) {
	err := Encode(failingWriter{}, Request{Tag: TagLang})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestIconPayload(t *testing.T) {
	assert.Equal(t, []byte("han"), IconPayload([]byte("han\n")))
	assert.Equal(t, []byte("han\n"), IconPayload([]byte("han\n\n")))
	assert.Equal(t, []byte("eng"), IconPayload([]byte("eng")))
	assert.Equal(t, []byte("han\r"), IconPayload([]byte("han\r")))
}

func TestHanjaKey(t *testing.T) {
	key, err := HanjaKey([]byte("가 \n\t"))
	require.NoError(t, err)
	assert.Equal(t, "가", key)

	key, err = HanjaKey([]byte(" 가"))
	require.NoError(t, err)
	assert.Equal(t, " 가", key)

	_, err = HanjaKey([]byte{0xff, 0xfe})
	assert.ErrorIs(t, err, ErrNotUTF8)
}

func TestParseArg(t *testing.T) {
	req, err := ParseArg(`ihan\n`)
	require.NoError(t, err)
	assert.Equal(t, TagIcon, req.Tag)
	assert.Equal(t, []byte("han\n"), req.Payload)

	_, err = ParseArg("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "hanja", TagHanja.String())
	assert.Equal(t, "unknown(0x7a)", Tag('z').String())
}
