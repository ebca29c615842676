package sequencer

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDECRQSSRequestsStatusString(t *testing.T) {
	tests := []struct {
		data     string
		expected string
	}{
		{"m", "RequestStatusString(0)"},
		{`"p`, "RequestStatusString(1)"},
		{" q", "RequestStatusString(2)"},
		{"r", "RequestStatusString(4)"},
		{"$|", "RequestStatusString(7)"},
	}
	for _, tc := range tests {
		t.Run(tc.data, func(t *testing.T) {
			s, screen := newTestSequencer()
			feed(s, "\x1bP$q"+tc.data+"\x1b\\")
			assert.Equal(t, []string{tc.expected}, screen.calls)
		})
	}
}

func TestDECRQSSUnknownSettingIgnored(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1bP$qzz\x1b\\")
	assert.Empty(t, screen.calls)
}

func TestImageUploadHook(t *testing.T) {
	s, screen := newTestSequencer()
	body := base64.StdEncoding.EncodeToString([]byte("abc"))
	feed(s, "\x1bPun=pic,f=1,w=3,h=1;!"+body+"\x1b\\")
	assert.Equal(t,
		[]string{`UploadImage(pic,RGB,3x1,"abc")`},
		screen.calls)
}

func TestImageUploadRequiresName(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1bPuf=1,w=3,h=1;xyz\x1b\\")
	assert.Empty(t, screen.calls)
}

func TestImageUploadPNGMustOmitDimensions(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1bPun=pic,f=3,w=3,h=1;xyz\x1b\\")
	assert.Empty(t, screen.calls)

	s, screen = newTestSequencer()
	feed(s, "\x1bPun=pic,f=3;xyz\x1b\\")
	assert.Equal(t,
		[]string{`UploadImage(pic,PNG,0x0,"xyz")`},
		screen.calls)
}

func TestImageRenderHook(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1bPrn=pic,r=10,c=20,x=2,y=3,w=8,h=4,l=1\x1b\\")
	assert.Equal(t,
		[]string{"RenderImage(pic,20x10,3:2,8x4,5,0,true,false)"},
		screen.calls)
}

func TestImageReleaseHook(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1bPdn=pic\x1b\\")
	assert.Equal(t, []string{"ReleaseImage(pic)"}, screen.calls)
}

func TestImageOneshotHook(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1bPsf=2,w=1,h=1,r=4,c=8;DATA\x1b\\")
	assert.Equal(t,
		[]string{`RenderImageData(RGBA,1x1,"DATA",8x4,5,0,false)`},
		screen.calls)
}

func TestImageRenderInvalidPolicyIgnored(t *testing.T) {
	s, screen := newTestSequencer()
	feed(s, "\x1bPrn=pic,a=weird\x1b\\")
	assert.Empty(t, screen.calls)
}
