package depfile

// NewHCLReaderWithEnviron creates an HCLReader reading a fixed environment, for testing.
func NewHCLReaderWithEnviron(environ func() []string) *HCLReader {
	return &HCLReader{environ: environ}
}
