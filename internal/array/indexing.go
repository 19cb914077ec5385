package array

import "fmt"

type indexKind int

const (
	indexAt indexKind = iota
	indexCoords
	indexList
)

// Index selects elements of an array for Take and ScatterAdd.
//
// Three forms exist, mirroring the supported read syntaxes:
//   - IndexAt(i): one position along the leading axis, result drops that axis
//   - IndexCoords(c...): one element addressed by full coordinates
//   - IndexList(rows): a gather along the leading axis; repeats are allowed
//     and accumulate under ScatterAdd
type Index struct {
	kind   indexKind
	at     int
	coords []int
	list   []int
}

// IndexAt selects position i along the leading axis.
func IndexAt(i int) Index {
	return Index{kind: indexAt, at: i}
}

// IndexCoords selects a single element by full coordinates.
func IndexCoords(coords ...int) Index {
	return Index{kind: indexCoords, coords: append([]int(nil), coords...)}
}

// IndexList gathers the given positions along the leading axis, in order.
func IndexList(rows []int) Index {
	return Index{kind: indexList, list: append([]int(nil), rows...)}
}

// Clone returns an independent copy of the index.
func (ix Index) Clone() Index {
	return Index{
		kind:   ix.kind,
		at:     ix.at,
		coords: append([]int(nil), ix.coords...),
		list:   append([]int(nil), ix.list...),
	}
}

func normalizeRow(i, size int) int {
	n := i
	if n < 0 {
		n += size
	}
	if n < 0 || n >= size {
		panic(fmt.Sprintf("array: index %d out of range for leading axis of size %d", i, size))
	}
	return n
}

func leadingAxisSize(a *Array) int {
	if len(a.shape) == 0 {
		panic("array: cannot index a 0-dimensional array")
	}
	return a.shape[0]
}

// rowExtent returns the element count of one leading-axis slice.
func rowExtent(a *Array) int {
	return Shape(a.shape[1:]).NumElements()
}

// Take reads the elements selected by the index into a new array.
func Take(a *Array, ix Index) *Array {
	switch ix.kind {
	case indexAt:
		size := leadingAxisSize(a)
		row := normalizeRow(ix.at, size)
		extent := rowExtent(a)
		out := Zeros(a.shape[1:].Clone())
		copy(out.data, a.data[row*extent:(row+1)*extent])
		return out

	case indexCoords:
		return Scalar(a.At(ix.coords...))

	case indexList:
		size := leadingAxisSize(a)
		extent := rowExtent(a)
		outShape := append(Shape{len(ix.list)}, a.shape[1:]...)
		out := Zeros(outShape)
		for i, r := range ix.list {
			row := normalizeRow(r, size)
			copy(out.data[i*extent:(i+1)*extent], a.data[row*extent:(row+1)*extent])
		}
		return out

	default:
		panic(fmt.Sprintf("array: unknown index kind %d", ix.kind))
	}
}

// ScatterAdd accumulates values into target at the positions the index
// selects. Repeated positions receive the sum of their contributions,
// never the last write. values must have the shape Take would produce
// for the same index on target.
func ScatterAdd(target *Array, ix Index, values *Array) {
	switch ix.kind {
	case indexAt:
		size := leadingAxisSize(target)
		row := normalizeRow(ix.at, size)
		extent := rowExtent(target)
		if values.NumElements() != extent {
			panic(fmt.Sprintf("array: ScatterAdd value count %d does not match row extent %d", values.NumElements(), extent))
		}
		dst := target.data[row*extent : (row+1)*extent]
		for i, v := range values.data {
			dst[i] += v
		}

	case indexCoords:
		target.data[target.flatIndex(ix.coords)] += values.Item()

	case indexList:
		size := leadingAxisSize(target)
		extent := rowExtent(target)
		if values.NumElements() != len(ix.list)*extent {
			panic(fmt.Sprintf("array: ScatterAdd value count %d does not match %d rows of extent %d", values.NumElements(), len(ix.list), extent))
		}
		for i, r := range ix.list {
			row := normalizeRow(r, size)
			dst := target.data[row*extent : (row+1)*extent]
			src := values.data[i*extent : (i+1)*extent]
			for j, v := range src {
				dst[j] += v
			}
		}

	default:
		panic(fmt.Sprintf("array: unknown index kind %d", ix.kind))
	}
}
