package chrome_test

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/chromemarks"
	"github.com/fwojciec/chromemarks/chrome"
	"github.com/fwojciec/chromemarks/fs"
	"github.com/fwojciec/chromemarks/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads bookmarks from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "Bookmarks")
		require.NoError(t, os.WriteFile(path, []byte(minimalFixture), 0644))
		store := chrome.NewStore(fs.NewFileReader(), noFavicons())

		bookmarks, err := store.Load(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, bookmarks, 2)
		assert.Equal(t, &chromemarks.Bookmark{Title: "Acme", URL: "http://acme.test", Folder: "Work"}, bookmarks[0])
		assert.Equal(t, &chromemarks.Bookmark{Title: "Personal Site", URL: "http://example.test"}, bookmarks[1])
	})

	t.Run("missing file fails with file read error", func(t *testing.T) {
		t.Parallel()

		store := chrome.NewStore(fs.NewFileReader(), noFavicons())

		_, err := store.Load(context.Background(), filepath.Join(t.TempDir(), "Bookmarks"))

		require.Error(t, err)
		assert.Equal(t, chromemarks.EFILEREAD, chromemarks.ErrorCode(err))
		assert.True(t, errors.Is(err, iofs.ErrNotExist))
	})

	t.Run("malformed JSON fails with malformed error", func(t *testing.T) {
		t.Parallel()

		files := &mock.FileReader{
			ReadFileFn: func(string) ([]byte, error) { return []byte("not json"), nil },
		}
		store := chrome.NewStore(files, noFavicons())

		_, err := store.Load(context.Background(), "/profile/Bookmarks")

		require.Error(t, err)
		assert.Equal(t, chromemarks.EMALFORMED, chromemarks.ErrorCode(err))
	})

	t.Run("file without roots yields empty list", func(t *testing.T) {
		t.Parallel()

		files := &mock.FileReader{
			ReadFileFn: func(string) ([]byte, error) { return []byte(`{"version":1}`), nil },
		}
		store := chrome.NewStore(files, noFavicons())

		bookmarks, err := store.Load(context.Background(), "/profile/Bookmarks")

		require.NoError(t, err)
		assert.Empty(t, bookmarks)
	})

	t.Run("reads the requested path", func(t *testing.T) {
		t.Parallel()

		var readPath string
		files := &mock.FileReader{
			ReadFileFn: func(name string) ([]byte, error) {
				readPath = name
				return []byte(minimalFixture), nil
			},
		}
		store := chrome.NewStore(files, noFavicons())

		_, err := store.Load(context.Background(), "/profile/Bookmarks")

		require.NoError(t, err)
		assert.Equal(t, "/profile/Bookmarks", readPath)
	})

	t.Run("reuses parsed list when content is unchanged", func(t *testing.T) {
		t.Parallel()

		derived := 0
		favicons := &mock.FaviconResolver{
			FaviconFn: func(string) string {
				derived++
				return ""
			},
		}
		files := &mock.FileReader{
			ReadFileFn: func(string) ([]byte, error) { return []byte(minimalFixture), nil },
		}
		store := chrome.NewStore(files, favicons)

		first, err := store.Load(context.Background(), "/profile/Bookmarks")
		require.NoError(t, err)
		second, err := store.Load(context.Background(), "/profile/Bookmarks")
		require.NoError(t, err)

		assert.Equal(t, 2, files.Reads(), "file is read on every load")
		assert.Equal(t, 2, derived, "favicons are derived only during the first parse")
		assert.Same(t, first[0], second[0])
	})

	t.Run("reparses when content changes", func(t *testing.T) {
		t.Parallel()

		content := minimalFixture
		files := &mock.FileReader{
			ReadFileFn: func(string) ([]byte, error) { return []byte(content), nil },
		}
		store := chrome.NewStore(files, noFavicons())

		_, err := store.Load(context.Background(), "/profile/Bookmarks")
		require.NoError(t, err)

		content = `{"roots":{"other":{"children":[{"type":"url","name":"New","url":"http://new.test"}]}}}`
		bookmarks, err := store.Load(context.Background(), "/profile/Bookmarks")

		require.NoError(t, err)
		require.Len(t, bookmarks, 1)
		assert.Equal(t, "New", bookmarks[0].Title)
	})

	t.Run("remembers one parse per path", func(t *testing.T) {
		t.Parallel()

		content := minimalFixture
		files := &mock.FileReader{
			ReadFileFn: func(string) ([]byte, error) { return []byte(content), nil },
		}
		store := chrome.NewStore(files, noFavicons())

		for _, c := range []string{minimalFixture, `{"roots":{}}`, `{"version":1}`} {
			content = c
			_, err := store.Load(context.Background(), "/Default/Bookmarks")
			require.NoError(t, err)
		}
		assert.Equal(t, 1, store.Len())

		_, err := store.Load(context.Background(), "/Profile 1/Bookmarks")
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("does not read when context is canceled", func(t *testing.T) {
		t.Parallel()

		files := &mock.FileReader{
			ReadFileFn: func(string) ([]byte, error) { return []byte(minimalFixture), nil },
		}
		store := chrome.NewStore(files, noFavicons())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.Load(ctx, "/profile/Bookmarks")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, files.Reads())
	})
}
