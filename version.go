package rbtree

// BinaryGitHash is the Git hash of the rbtree binary file which is executing.
// It is set at link time: -ldflags "-X github.com/cyraxred/rbtree.BinaryGitHash=$(git rev-parse HEAD)"
var BinaryGitHash = "<unknown>"

// BinaryVersion is rbtree's API version.
const BinaryVersion = 1
