package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/pillrow/internal/frame"
	"github.com/young1lin/pillrow/internal/observe"
)

func TestSizeChangeWireFormat(t *testing.T) {
	t.Parallel()

	data, err := frame.NewSizeChange(observe.Size{Width: 400, Height: 500}).Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Surfer_frameSizeChange","width":400,"height":500}`, string(data))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    frame.Message
		wantErr error
	}{
		{
			name: "valid",
			data: `{"type":"Surfer_frameSizeChange","width":400,"height":500}`,
			want: frame.Message{Type: frame.TypeFrameSizeChange, Width: 400, Height: 500},
		},
		{
			name: "zero sizes are present",
			data: `{"type":"Surfer_frameSizeChange","width":0,"height":0}`,
			want: frame.Message{Type: frame.TypeFrameSizeChange},
		},
		{name: "other type", data: `{"type":"chat","width":1,"height":1}`, wantErr: frame.ErrUnknownType},
		{name: "no type", data: `{"width":1,"height":1}`, wantErr: frame.ErrUnknownType},
		{name: "no width", data: `{"type":"Surfer_frameSizeChange","height":1}`, wantErr: frame.ErrMissingField},
		{name: "no height", data: `{"type":"Surfer_frameSizeChange","width":1}`, wantErr: frame.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := frame.Decode([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	t.Parallel()

	for _, data := range []string{`"hello"`, `42`, `true`, `[1,2]`, `{`, ``} {
		_, err := frame.Decode([]byte(data))
		assert.Error(t, err, data)
	}
}
