package middleware

import (
	"bytes"
	"net/http"
	"testing"
)

func TestCacheEntryRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Set("X-Custom", "v")
	body := []byte(`{"success":true,"cities":[]}`)

	entry, err := encodeEntry(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodeEntry: %v", err)
	}

	status, gotHdr, gotBody, ok := decodeEntry(entry)
	if !ok {
		t.Fatal("decodeEntry reported failure")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", gotHdr.Get("Content-Type"))
	}
	if gotHdr.Get("X-Custom") != "v" {
		t.Errorf("X-Custom = %q", gotHdr.Get("X-Custom"))
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestCacheEntryEmptyBody(t *testing.T) {
	entry, err := encodeEntry(http.StatusNoContent, http.Header{}, nil)
	if err != nil {
		t.Fatalf("encodeEntry: %v", err)
	}
	status, _, body, ok := decodeEntry(entry)
	if !ok || status != http.StatusNoContent || len(body) != 0 {
		t.Errorf("got status=%d body=%q ok=%v", status, body, ok)
	}
}

func TestDecodeEntryRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		{1, 2, 3},
		// header length pointing past the end of the buffer
		{0, 0, 0, 200, 0, 0, 4, 0, 'x'},
	}
	for _, bs := range cases {
		if _, _, _, ok := decodeEntry(bs); ok {
			t.Errorf("decodeEntry accepted %v", bs)
		}
	}
}

func TestAsInt64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int64
	}{
		{int64(7), 7},
		{int(3), 3},
		{float64(2.9), 2},
		{"41", 41},
		{"not a number", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
