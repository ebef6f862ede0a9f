package ingest

import (
	"strings"
	"testing"
)

func TestParseChannels(t *testing.T) {
	input := "Geo News,UCjsZ1\n\n  ARY News , UCk2x \n"

	channels, err := ParseChannels(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseChannels() error = %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("ParseChannels() len = %d", len(channels))
	}
	if channels[0].Name != "Geo News" || channels[0].ID != "UCjsZ1" {
		t.Fatalf("ParseChannels()[0] = %+v", channels[0])
	}
	if channels[1].Name != "ARY News" || channels[1].ID != "UCk2x" {
		t.Fatalf("ParseChannels()[1] = %+v", channels[1])
	}
}

func TestParseChannelsRejectsEmbeddedCommas(t *testing.T) {
	if _, err := ParseChannels(strings.NewReader("News, Sports & More,UCabc\n")); err == nil {
		t.Fatal("ParseChannels() error = nil, want format error")
	}
}

func TestParseChannelsRejectsDuplicateNames(t *testing.T) {
	if _, err := ParseChannels(strings.NewReader("Geo,UC1\nGeo,UC2\n")); err == nil {
		t.Fatal("ParseChannels() error = nil, want duplicate error")
	}
}

func TestParseChannelsRejectsEmptyFields(t *testing.T) {
	if _, err := ParseChannels(strings.NewReader(",UC1\n")); err == nil {
		t.Fatal("ParseChannels() error = nil, want empty-name error")
	}
}
