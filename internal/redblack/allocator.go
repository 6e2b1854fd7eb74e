package redblack

import (
	"math"
	"sync"

	"github.com/gogo/protobuf/sortkeys"
	"github.com/pkg/errors"
)

// Allocator is the allocator for nodes in a Tree.
//
// Several trees may share the same allocator, in which case they also share the owner:
// the allocator is not safe for concurrent use.
type Allocator struct {
	// HibernationThreshold is the minimum Size() for Hibernate() to take effect.
	HibernationThreshold int
	// MaxNodes limits the number of live nodes. Zero means the uint32 index space.
	MaxNodes int

	storage              []node
	gaps                 map[uint32]bool
	hibernatedData       [hibernatedColumns + 1][]byte
	hibernatedStorageLen int
	hibernatedGapsLen    int
}

const hibernatedColumns = 7

// NewAllocator creates a new allocator for Tree's nodes.
func NewAllocator() *Allocator {
	return &Allocator{
		storage: []node{},
		gaps:    map[uint32]bool{},
	}
}

// Size returns the currently allocated size, including the reserved node #0.
func (allocator Allocator) Size() int {
	if allocator.storage == nil {
		return allocator.hibernatedStorageLen
	}
	return len(allocator.storage)
}

// Used returns the number of live nodes contained in the allocator.
func (allocator Allocator) Used() int {
	if allocator.storage == nil {
		panic("hibernated allocators cannot be used")
	}
	if len(allocator.storage) == 0 {
		return 0
	}
	return len(allocator.storage) - len(allocator.gaps) - 1
}

// Hibernated checks whether the allocator is currently compressed.
func (allocator Allocator) Hibernated() bool {
	return allocator.hibernatedStorageLen > 0
}

// HibernatedSize returns the number of bytes occupied by the compressed state.
func (allocator Allocator) HibernatedSize() int {
	size := 0
	for _, data := range allocator.hibernatedData {
		size += len(data)
	}
	return size
}

// Hibernate compresses the allocated memory.
func (allocator *Allocator) Hibernate() {
	if allocator.hibernatedStorageLen > 0 {
		panic("cannot hibernate an already hibernated Allocator")
	}
	if len(allocator.storage) < allocator.HibernationThreshold {
		return
	}
	allocator.hibernatedStorageLen = len(allocator.storage)
	if allocator.hibernatedStorageLen == 0 {
		return
	}
	buffers := [hibernatedColumns][]uint32{}
	for i := 0; i < len(buffers); i++ {
		buffers[i] = make([]uint32, len(allocator.storage))
	}
	// we deinterleave to achieve a better compression ratio
	for i, n := range allocator.storage {
		buffers[0][i] = uint32(n.key)
		buffers[1][i] = n.left
		buffers[2][i] = n.parent
		buffers[3][i] = n.right
		buffers[4][i] = n.gen
		if n.color {
			buffers[5][i] = 1
		}
		if n.used {
			buffers[6][i] = 1
		}
	}
	allocator.storage = nil
	wg := &sync.WaitGroup{}
	wg.Add(len(buffers) + 1)
	for i, buffer := range buffers {
		go func(i int, buffer []uint32) {
			allocator.hibernatedData[i] = CompressUInt32Slice(buffer)
			buffers[i] = nil
			wg.Done()
		}(i, buffer)
	}
	// compress gaps
	go func() {
		if len(allocator.gaps) > 0 {
			allocator.hibernatedGapsLen = len(allocator.gaps)
			gapsBuffer := make([]uint32, len(allocator.gaps))
			i := 0
			for key := range allocator.gaps {
				gapsBuffer[i] = key
				i++
			}
			sortkeys.Uint32s(gapsBuffer)
			allocator.hibernatedData[len(buffers)] = CompressUInt32Slice(gapsBuffer)
		}
		allocator.gaps = nil
		wg.Done()
	}()
	wg.Wait()
}

// Boot performs the opposite of Hibernate() - decompresses and restores the allocated memory.
func (allocator *Allocator) Boot() {
	if allocator.hibernatedStorageLen == 0 {
		// not hibernated
		return
	}
	allocator.gaps = map[uint32]bool{}
	buffers := [hibernatedColumns][]uint32{}
	wg := &sync.WaitGroup{}
	wg.Add(len(buffers) + 1)
	for i := 0; i < len(buffers); i++ {
		go func(i int) {
			buffers[i] = make([]uint32, allocator.hibernatedStorageLen)
			DecompressUInt32Slice(allocator.hibernatedData[i], buffers[i])
			allocator.hibernatedData[i] = nil
			wg.Done()
		}(i)
	}
	go func() {
		if allocator.hibernatedGapsLen > 0 {
			gapData := allocator.hibernatedData[len(buffers)]
			buffer := make([]uint32, allocator.hibernatedGapsLen)
			DecompressUInt32Slice(gapData, buffer)
			for _, key := range buffer {
				allocator.gaps[key] = true
			}
			allocator.hibernatedData[len(buffers)] = nil
			allocator.hibernatedGapsLen = 0
		}
		wg.Done()
	}()
	wg.Wait()
	allocator.storage = make([]node, allocator.hibernatedStorageLen, (allocator.hibernatedStorageLen*3)/2)
	for i := range allocator.storage {
		n := &allocator.storage[i]
		n.key = Key(buffers[0][i])
		n.left = buffers[1][i]
		n.parent = buffers[2][i]
		n.right = buffers[3][i]
		n.gen = buffers[4][i]
		n.color = buffers[5][i] > 0
		n.used = buffers[6][i] > 0
	}
	allocator.hibernatedStorageLen = 0
}

func (allocator *Allocator) malloc() (uint32, error) {
	if allocator.storage == nil {
		panic("hibernated allocators cannot be used")
	}
	if allocator.MaxNodes > 0 && allocator.Used() >= allocator.MaxNodes {
		return 0, errors.Wrapf(ErrOutOfMemory, "%d nodes are already allocated", allocator.MaxNodes)
	}
	if len(allocator.gaps) > 0 {
		var key uint32
		for key = range allocator.gaps {
			break
		}
		delete(allocator.gaps, key)
		allocator.storage[key].used = true
		return key, nil
	}
	n := len(allocator.storage)
	if n == 0 {
		// zero is reserved
		allocator.storage = append(allocator.storage, node{})
		n = 1
	}
	if n >= negativeLimitNode-1 {
		// math.MaxUint32 is reserved
		return 0, errors.Wrap(ErrOutOfMemory, "the uint32 node index space is exhausted")
	}
	allocator.storage = append(allocator.storage, node{used: true})
	return uint32(n), nil
}

func (allocator *Allocator) free(n uint32) {
	if allocator.storage == nil {
		panic("hibernated allocators cannot be used")
	}
	if n == 0 {
		panic("node #0 is special and cannot be deallocated")
	}
	_, exists := allocator.gaps[n]
	doAssert(!exists)
	allocator.storage[n] = node{gen: allocator.storage[n].gen + 1}
	allocator.gaps[n] = true
}

// live checks that slot n is allocated and still has the generation gen.
func (allocator *Allocator) live(n, gen uint32) bool {
	if allocator.storage == nil {
		panic("hibernated allocators cannot be used")
	}
	if n == 0 || n == negativeLimitNode || int(n) >= len(allocator.storage) {
		return false
	}
	slot := &allocator.storage[n]
	return slot.used && slot.gen == gen
}

const negativeLimitNode = math.MaxUint32
