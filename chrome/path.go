package chrome

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/chromemarks"
)

// BookmarksFile is the name of the bookmarks file inside a profile directory.
const BookmarksFile = "Bookmarks"

// Env holds the parts of the process environment that determine where
// Chrome keeps its user data.
type Env struct {
	// Home is the user's home directory.
	Home string

	// LocalAppData is the value of %LOCALAPPDATA% on Windows.
	LocalAppData string

	// UserDataDir overrides the platform's user data directory, like
	// Chrome's --user-data-dir flag.
	UserDataDir string
}

// OSEnv captures Env from the current process.
func OSEnv() Env {
	home, _ := os.UserHomeDir()
	return Env{
		Home:         home,
		LocalAppData: os.Getenv("LOCALAPPDATA"),
	}
}

// UserDataDir returns Chrome's user data directory for platform, or an
// empty string if the platform is unsupported or its base directory is
// unknown. Platform names follow runtime.GOOS.
//
// https://chromium.googlesource.com/chromium/src/+/main/docs/user_data_dir.md
func UserDataDir(platform string, env Env) string {
	if env.UserDataDir != "" {
		return env.UserDataDir
	}

	switch platform {
	case "darwin":
		if env.Home == "" {
			return ""
		}
		return filepath.Join(env.Home, "Library", "Application Support", "Google", "Chrome")
	case "windows":
		if env.LocalAppData == "" {
			return ""
		}
		return filepath.Join(env.LocalAppData, "Google", "Chrome", "User Data")
	case "linux":
		if env.Home == "" {
			return ""
		}
		return filepath.Join(env.Home, ".config", "google-chrome")
	default:
		return ""
	}
}

// ResolvePath returns the path to the bookmarks file of profile on
// platform. An empty profile means chromemarks.DefaultProfile. Returns an
// empty string when no location is known; callers must treat that as "no
// file" rather than a path to open.
func ResolvePath(platform, profile string, env Env) string {
	dir := UserDataDir(platform, env)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, chromemarks.ProfileOrDefault(profile), BookmarksFile)
}
