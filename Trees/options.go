package Trees

import "github.com/rs/zerolog"

type config struct {
	log *zerolog.Logger
}

// Option configures a LinkedBinaryTree created by NewLinkedBinaryTree.
type Option func(*config)

// WithLogger makes the tree log its structural edits, and the edits it rejects,
// at debug level. Without it the tree doesn't log.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = &l
	}
}
