package file

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)

	a := NewName()
	b := NewName()

	assert.Regexp(t, hex32, a)
	assert.Regexp(t, hex32, b)
	assert.NotEqual(t, a, b)
}

func TestURLMapping(t *testing.T) {
	name := NewName()

	url := PublicURL(name)
	assert.Equal(t, "static/"+name+".md", url)

	// the stored url resolves back to the object key through this single
	// pure function, nothing else joins paths
	assert.Equal(t, name+".md", Key(url))
}

func TestWriteReadDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()

	ctx := context.Background()
	key := NewName() + ".md"

	require.NoError(t, store.Write(ctx, key, strings.NewReader("hello")))

	data, err := store.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Read(ctx, key)
	assert.Error(t, err)
}

func TestDeleteMissingFails(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()

	// delete is not idempotent: a missing object is a failure, twice over
	err = store.Delete(context.Background(), "0123456789abcdef0123456789abcdef.md")
	assert.Error(t, err)
	err = store.Delete(context.Background(), "0123456789abcdef0123456789abcdef.md")
	assert.Error(t, err)
}

func TestWriteReplacesContent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()

	ctx := context.Background()
	key := NewName() + ".md"

	require.NoError(t, store.Write(ctx, key, strings.NewReader("first")))
	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Write(ctx, key, strings.NewReader("second")))

	data, err := store.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
