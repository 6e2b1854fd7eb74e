package rbtree_test

import (
	"fmt"

	"github.com/cyraxred/rbtree"
)

func Example() {
	tree := rbtree.New()
	for _, key := range []rbtree.Key{10, 20, 30, 20} {
		if _, err := tree.Insert(key); err != nil {
			panic(err)
		}
	}
	if err := tree.Erase(tree.Find(20)); err != nil {
		panic(err)
	}
	keys := make([]rbtree.Key, tree.Len())
	n, _ := tree.ToArray(keys)
	fmt.Println(n, keys, tree.Min().Key(), tree.Max().Key())
	tree.Destroy()
	// Output: 3 [10 20 30] 10 30
}

func ExampleTree_FindGE() {
	tree := rbtree.New()
	for _, key := range []rbtree.Key{5, 1, 9} {
		_, _ = tree.Insert(key)
	}
	for it := tree.FindGE(2); !it.Limit(); it = it.Next() {
		fmt.Print(it.Key(), " ")
	}
	fmt.Println()
	// Output: 5 9
}
