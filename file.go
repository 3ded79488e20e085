package chromemarks

// FileReader reads whole files by path.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}
