package typed_flags

import (
	"testing"
)

func TestTransport_UnmarshalFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Transport
		wantErr bool
	}{
		{name: "valid stdio", value: "stdio", want: TransportStdio},
		{name: "valid http", value: "http", want: TransportHTTP},
		{name: "invalid transport", value: "tcp", wantErr: true},
		{name: "empty string", value: "", wantErr: true},
		{name: "case sensitive", value: "HTTP", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transport Transport
			err := transport.UnmarshalFlag(tt.value)

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalFlag() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && transport != tt.want {
				t.Errorf("UnmarshalFlag() got = %v, want %v", transport, tt.want)
			}
		})
	}
}

func TestTransport_Complete(t *testing.T) {
	tests := []struct {
		name      string
		match     string
		wantItems []string
	}{
		{name: "empty match returns all", match: "", wantItems: []string{"stdio", "http"}},
		{name: "match stdio", match: "st", wantItems: []string{"stdio"}},
		{name: "match http", match: "h", wantItems: []string{"http"}},
		{name: "no match", match: "xyz", wantItems: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transport Transport
			completions := transport.Complete(tt.match)

			if len(completions) != len(tt.wantItems) {
				t.Fatalf("Complete() returned %d completions, want %d", len(completions), len(tt.wantItems))
			}
			for i, want := range tt.wantItems {
				if completions[i].Item != want {
					t.Errorf("Complete()[%d].Item = %v, want %v", i, completions[i].Item, want)
				}
			}
		})
	}
}
