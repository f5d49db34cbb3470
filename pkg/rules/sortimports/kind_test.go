package sortimports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		kind  ImportKind
		token string
	}{
		{"side effect", KindNone, "none"},
		{"namespace", KindNamespace, "all"},
		{"multiple", KindMultiple, "multiple"},
		{"single", KindSingle, "single"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.token, tt.kind.Token(), "Token() for %v", tt.kind)
			req.Equal(tt.kind, KindFromToken(tt.token), "KindFromToken(%q)", tt.token)
			req.Equal(tt.token, tt.kind.String(), "String() for %v", tt.kind)
		})
	}
}

func TestKindFromTokenUnknown(t *testing.T) {
	req := require.New(t)

	req.Equal(KindNone, KindFromToken("namespace"), "the namespace kind spells its token 'all'")
	req.Equal(KindNone, KindFromToken(""), "empty token")
	req.Equal(KindNone, KindFromToken("Single"), "tokens are lowercase")
}
