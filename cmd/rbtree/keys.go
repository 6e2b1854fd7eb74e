package main

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"strconv"

	"github.com/cyraxred/rbtree"
	"github.com/minio/highwayhash"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

var hashKey = []byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
}

// checksum hashes the keys in their order.
func checksum(keys []rbtree.Key) uint64 {
	buffer := make([]byte, len(keys)*4)
	for i, key := range keys {
		binary.LittleEndian.PutUint32(buffer[i*4:], uint32(key))
	}
	return highwayhash.Sum64(buffer, hashKey)
}

// openInput opens the file named by the only argument, or stdin if there are no arguments.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	path, err := homedir.Expand(args[0])
	if err != nil {
		return nil, args[0], err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	return file, path, nil
}

// readKeys parses whitespace separated decimal int32 numbers.
func readKeys(reader io.Reader) ([]rbtree.Key, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	var keys []rbtree.Key
	for scanner.Scan() {
		word := scanner.Text()
		val, err := strconv.ParseInt(word, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "key #%d", len(keys)+1)
		}
		keys = append(keys, rbtree.Key(val))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// loadKeys reads the keys from the file named by args or from stdin.
func loadKeys(args []string) ([]rbtree.Key, string, error) {
	input, name, err := openInput(args)
	if err != nil {
		return nil, name, err
	}
	defer input.Close()
	keys, err := readKeys(input)
	if err != nil {
		return nil, name, errors.Wrapf(err, "failed to read %s", name)
	}
	return keys, name, nil
}

// buildTree inserts the keys into a new tree.
func buildTree(keys []rbtree.Key) (*rbtree.Tree, error) {
	tree := rbtree.New()
	for _, key := range keys {
		if _, err := tree.Insert(key); err != nil {
			tree.Destroy()
			return nil, err
		}
	}
	return tree, nil
}
