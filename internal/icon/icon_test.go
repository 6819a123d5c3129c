package icon_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mattjoyce/hanpick/internal/icon"
	"github.com/mattjoyce/hanpick/internal/icon/mocks"
)

func TestDefaultIsEng(t *testing.T) {
	s := icon.NewState(nil)
	assert.Equal(t, icon.Eng, s.Get())
	assert.Equal(t, "eng", s.Code())
}

func TestSetNotifiesIndicator(t *testing.T) {
	ctrl := gomock.NewController(t)
	ind := mocks.NewMockIndicator(ctrl)

	gomock.InOrder(
		ind.EXPECT().Show(icon.Han),
		ind.EXPECT().Show(icon.Eng),
	)

	s := icon.NewState(ind)
	s.Set(icon.Han)
	assert.Equal(t, "han", s.Code())
	s.Set(icon.Eng)
	assert.Equal(t, "eng", s.Code())
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in     string
		want   icon.Lang
		wantOK bool
	}{
		{"eng", icon.Eng, true},
		{"han", icon.Han, true},
		{"HAN", icon.Eng, false},
		{"han\n", icon.Eng, false},
		{"", icon.Eng, false},
		{"kor", icon.Eng, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := icon.ParseLang([]byte(tt.in))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
