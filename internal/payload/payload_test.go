package payload

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		format  Format
		want    []byte
		wantErr bool
	}{
		{name: "base64", text: "cHNidP8A", format: FormatBase64, want: []byte{'p', 's', 'b', 't', 0xff, 0x00}},
		{name: "default is base64", text: "cHNidP8A", want: []byte{'p', 's', 'b', 't', 0xff, 0x00}},
		{name: "lowercase hex", text: "70736274ff00", format: FormatHex, want: []byte{'p', 's', 'b', 't', 0xff, 0x00}},
		{name: "uppercase hex with newline", text: "70736274FF00\n", format: FormatHex, want: []byte{'p', 's', 'b', 't', 0xff, 0x00}},
		{name: "odd hex", text: "707", format: FormatHex, wantErr: true},
		{name: "hex given to base64", text: "70736274ff0", format: FormatBase64, wantErr: true},
		{name: "invalid base64", text: "cHNidP8A!", format: FormatBase64, wantErr: true},
		{name: "unsupported format", text: "00", format: "bech32", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInputDecode) {
					t.Errorf("Decode() error = %v, want ErrInputDecode", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() got = %x, want %x", got, tt.want)
			}
		})
	}
}
