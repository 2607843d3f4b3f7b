package report

// DefaultOutput is the file Build writes when persisting.
const DefaultOutput = "accounts_status.txt"

// Option customizes Build.
type Option func(*config)

type config struct {
	output string
}

func defaultConfig() config {
	return config{output: DefaultOutput}
}

// WithOutput sets the file Build persists to. Panics on an empty path.
func WithOutput(path string) Option {
	if path == "" {
		panic("report: WithOutput(\"\")")
	}
	return func(c *config) {
		c.output = path
	}
}
