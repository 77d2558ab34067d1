package localstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelbay/goapi/base/ctx"
)

func TestStore(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	s, err := New(t.TempDir())
	req.NoError(err)

	type doc struct {
		Ids []string `json:"ids"`
	}

	var out doc
	req.Equal(ErrNotFound, s.Get(c, "mintedPics", &out))

	in := doc{Ids: []string{"a", "b"}}
	req.NoError(s.Put(c, "mintedPics", &in))
	req.NoError(s.Get(c, "mintedPics", &out))
	req.Equal(in, out)

	// last write wins
	in.Ids = []string{"c"}
	req.NoError(s.Put(c, "mintedPics", &in))
	out = doc{}
	req.NoError(s.Get(c, "mintedPics", &out))
	req.Equal([]string{"c"}, out.Ids)

	req.NoError(s.Del(c, "mintedPics"))
	req.Equal(ErrNotFound, s.Get(c, "mintedPics", &out))
	req.NoError(s.Del(c, "mintedPics"))
}
