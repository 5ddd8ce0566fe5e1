package hashmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusroute/hashmap"
)

// MapSuite exercises Map with string keys and the default hasher.
type MapSuite struct {
	suite.Suite
	m *hashmap.Map[string, int]
}

func (s *MapSuite) SetupTest() {
	s.m = hashmap.New[string, int]()
}

func (s *MapSuite) TestPutGetContains() {
	require := require.New(s.T())
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(s.m.Put(fmt.Sprintf("k%d", i), i))
	}
	require.Equal(n, s.m.Size())
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("k%d", i)
		require.True(s.m.ContainsKey(key), key)
		v, err := s.m.Get(key)
		require.NoError(err)
		require.Equal(i, v)
	}
	require.False(s.m.ContainsKey("never"))
}

func (s *MapSuite) TestDuplicateKeyLeavesValue() {
	require := require.New(s.T())
	require.NoError(s.m.Put("a", 1))
	err := s.m.Put("a", 2)
	require.ErrorIs(err, hashmap.ErrDuplicateKey)

	v, err := s.m.Get("a")
	require.NoError(err)
	require.Equal(1, v, "duplicate Put must not overwrite")
	require.Equal(1, s.m.Size())
}

func (s *MapSuite) TestEmptyStringKey() {
	require := require.New(s.T())
	require.NoError(s.m.Put("", 1))
	require.True(s.m.ContainsKey(""))
	v, err := s.m.Get("")
	require.NoError(err)
	require.Equal(1, v)
	require.Equal(1, s.m.Size())
}

func (s *MapSuite) TestGetMissing() {
	_, err := s.m.Get("nope")
	require.ErrorIs(s.T(), err, hashmap.ErrKeyNotFound)
}

func (s *MapSuite) TestRemove() {
	require := require.New(s.T())
	require.NoError(s.m.Put("x", 10))
	require.NoError(s.m.Put("y", 20))
	capBefore := s.m.Capacity()

	v, err := s.m.Remove("x")
	require.NoError(err)
	require.Equal(10, v)
	require.False(s.m.ContainsKey("x"))
	require.True(s.m.ContainsKey("y"))
	require.Equal(1, s.m.Size())
	require.Equal(capBefore, s.m.Capacity(), "remove never shrinks")

	_, err = s.m.Remove("x")
	require.ErrorIs(err, hashmap.ErrKeyNotFound)
}

func (s *MapSuite) TestClearKeepsCapacity() {
	require := require.New(s.T())
	for i := 0; i < 100; i++ {
		require.NoError(s.m.Put(fmt.Sprint("c", i), i))
	}
	capBefore := s.m.Capacity()
	s.m.Clear()
	require.Zero(s.m.Size())
	require.Equal(capBefore, s.m.Capacity())
	require.False(s.m.ContainsKey("c1"))
	require.NoError(s.m.Put("c1", 1), "map is reusable after Clear")
}

func (s *MapSuite) TestRangeAndKeys() {
	require := require.New(s.T())
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		require.NoError(s.m.Put(k, v))
	}
	got := map[string]int{}
	s.m.Range(func(k string, v int) bool {
		got[k] = v
		return true
	})
	require.Equal(want, got)
	require.ElementsMatch([]string{"a", "b", "c"}, s.m.Keys())

	visited := 0
	s.m.Range(func(string, int) bool {
		visited++
		return false
	})
	require.Equal(1, visited, "Range stops when fn returns false")
}

func TestMapSuite(t *testing.T) {
	suite.Run(t, new(MapSuite))
}

func TestResizeAtLoadFactor(t *testing.T) {
	m := hashmap.New[int, string](hashmap.WithCapacity(10))
	require.Equal(t, 10, m.Capacity())

	// 7/10 = 0.7 stays below the threshold.
	for i := 1; i <= 7; i++ {
		require.NoError(t, m.Put(i, fmt.Sprint("v", i)))
	}
	require.Equal(t, 10, m.Capacity())

	// 8/10 = 0.8 reaches it.
	require.NoError(t, m.Put(8, "v8"))
	require.Equal(t, 20, m.Capacity())
	require.Equal(t, 8, m.Size())
	for i := 1; i <= 8; i++ {
		v, err := m.Get(i)
		require.NoError(t, err)
		require.Equal(t, fmt.Sprint("v", i), v)
	}
}

func TestRepeatedGrowthPreservesPairs(t *testing.T) {
	m := hashmap.New[string, int](hashmap.WithCapacity(1))
	for i := 0; i < 1000; i++ {
		require.NoError(t, m.Put(fmt.Sprintf("key-%d", i), i))
	}
	require.Equal(t, 1000, m.Size())
	require.Less(t, float64(m.Size())/float64(m.Capacity()), hashmap.LoadFactor)
	for i := 0; i < 1000; i++ {
		v, err := m.Get(fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestCollisionChain(t *testing.T) {
	// Every key lands in the same bucket.
	m := hashmap.NewWithHasher[string, int](func(string) uint64 { return 42 }, hashmap.WithCapacity(100))
	for i, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, m.Put(k, i))
	}
	_, err := m.Remove("b")
	require.NoError(t, err)
	for k, want := range map[string]int{"a": 0, "c": 2, "d": 3} {
		v, err := m.Get(k)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.ErrorIs(t, m.Put("c", 9), hashmap.ErrDuplicateKey)
}

func TestHighBitHashStaysInRange(t *testing.T) {
	m := hashmap.NewWithHasher[string, int](func(string) uint64 { return ^uint64(0) }, hashmap.WithCapacity(3))
	require.NoError(t, m.Put("neg", 1))
	require.True(t, m.ContainsKey("neg"))
}

func TestStructKeys(t *testing.T) {
	type point struct{ X, Y int }
	m := hashmap.New[point, string]()
	require.NoError(t, m.Put(point{}, "origin"))
	require.NoError(t, m.Put(point{1, 2}, "p"))
	v, err := m.Get(point{1, 2})
	require.NoError(t, err)
	require.Equal(t, "p", v)
	require.False(t, m.ContainsKey(point{2, 1}))
}

func TestZeroIntKey(t *testing.T) {
	m := hashmap.New[int, string]()
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(i, fmt.Sprint(i)))
	}
	require.Equal(t, 10, m.Size())
	v, err := m.Get(0)
	require.NoError(t, err)
	require.Equal(t, "0", v)
	require.ErrorIs(t, m.Put(0, "again"), hashmap.ErrDuplicateKey)
}

func TestNilKeysRejected(t *testing.T) {
	type place struct{ name string }
	ptrs := hashmap.New[*place, int]()
	require.ErrorIs(t, ptrs.Put(nil, 1), hashmap.ErrInvalidKey)
	require.False(t, ptrs.ContainsKey(nil))
	require.NoError(t, ptrs.Put(&place{"lab"}, 2))
	require.Equal(t, 1, ptrs.Size())

	ifaces := hashmap.New[any, int]()
	require.ErrorIs(t, ifaces.Put(nil, 1), hashmap.ErrInvalidKey)
	require.NoError(t, ifaces.Put(0, 1), "non-nil interface holding a zero value")
	require.NoError(t, ifaces.Put("", 2))
	require.Equal(t, 2, ifaces.Size())
}

func TestWithCapacityPanics(t *testing.T) {
	require.PanicsWithError(t, hashmap.ErrBadCapacity.Error(), func() {
		hashmap.New[string, int](hashmap.WithCapacity(0))
	})
}
