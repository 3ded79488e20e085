package desktop_test

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fwojciec/chromemarks"
	"github.com/fwojciec/chromemarks/desktop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("darwin uses open", func(t *testing.T) {
		t.Parallel()

		cmd, err := desktop.Command("darwin", "https://acme.test/")

		require.NoError(t, err)
		assert.Equal(t, []string{"open", "https://acme.test/"}, cmd.Args)
	})

	t.Run("linux uses xdg-open", func(t *testing.T) {
		t.Parallel()

		cmd, err := desktop.Command("linux", "https://acme.test/")

		require.NoError(t, err)
		assert.Equal(t, []string{"xdg-open", "https://acme.test/"}, cmd.Args)
	})

	t.Run("windows passes url as a single argument", func(t *testing.T) {
		t.Parallel()

		cmd, err := desktop.Command("windows", "https://acme.test/?a=1&b=2")

		require.NoError(t, err)
		assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler", "https://acme.test/?a=1&b=2"}, cmd.Args)
	})

	t.Run("unknown platform fails", func(t *testing.T) {
		t.Parallel()

		_, err := desktop.Command("plan9", "https://acme.test/")

		assert.Equal(t, chromemarks.EINVALID, chromemarks.ErrorCode(err))
	})
}

func TestOpener_Open(t *testing.T) {
	t.Parallel()

	t.Run("runs the platform command", func(t *testing.T) {
		t.Parallel()

		var ran *exec.Cmd
		o := &desktop.Opener{
			Platform: "linux",
			Run: func(cmd *exec.Cmd) error {
				ran = cmd
				return nil
			},
		}

		require.NoError(t, o.Open("https://acme.test/"))
		require.NotNil(t, ran)
		assert.Equal(t, "xdg-open", filepath.Base(ran.Args[0]))
		assert.Equal(t, "https://acme.test/", ran.Args[1])
	})

	t.Run("rejects relative urls", func(t *testing.T) {
		t.Parallel()

		o := &desktop.Opener{
			Platform: "linux",
			Run: func(cmd *exec.Cmd) error {
				t.Fatal("command should not run")
				return nil
			},
		}

		err := o.Open("acme.test")
		assert.Equal(t, chromemarks.EINVALID, chromemarks.ErrorCode(err))
	})

	t.Run("wraps command failure", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("exit status 3")
		o := &desktop.Opener{
			Platform: "darwin",
			Run:      func(cmd *exec.Cmd) error { return cause },
		}

		err := o.Open("https://acme.test/")
		assert.ErrorIs(t, err, cause)
	})
}
