package navigation

import (
	"container/heap"

	"github.com/gorustyt/gonavmesh2d/common"
)

// searchNode is the per query state of one polygon.
type searchNode struct {
	ref      PolyRef
	entry    common.Vec2 // where the path enters the polygon
	distance float32     // path length from the start up to entry
	cost     float32     // distance plus the shortest hop from entry to a connected edge
	prevEdge int         // edge crossed to enter the polygon, -1 for the start polygon
	seq      int         // insertion order, breaks cost ties
	_index   int         // heap position, -1 once closed
}

func (node *searchNode) SetIndex(index int) {
	node._index = index
}

func (node *searchNode) GetIndex() int {
	return node._index
}

func (node *searchNode) isOpen() bool {
	return node._index >= 0
}

type NodeQueueIndex interface {
	SetIndex(index int)
	GetIndex() int
}

type NodeQueue[T NodeQueueIndex] interface {
	Peek() T    //查看堆顶，不会移除元素
	Poll() T    //从堆顶弹出一个元素
	Update(T)   //更新元素
	Remove(T)   //移除一个元素
	Offer(T)    //插入一个元素
	Reset()
	Empty() bool
}

// 优先级队列
type nodeQueue[T NodeQueueIndex] struct {
	data []T
	less func(t1, t2 T) bool
}

func NewNodeQueue[T NodeQueueIndex](less func(t1, t2 T) bool) NodeQueue[T] {
	q := &nodeQueue[T]{less: less}
	heap.Init(q)
	return q
}

func (q *nodeQueue[T]) Reset() {
	q.data = q.data[:0]
}

// 查看堆顶
func (q *nodeQueue[T]) Peek() T {
	return q.data[0]
}

func (q *nodeQueue[T]) Poll() T { return heap.Pop(q).(T) }

func (q *nodeQueue[T]) Update(value T) {
	heap.Fix(q, value.GetIndex())
}

func (q *nodeQueue[T]) Remove(value T) {
	heap.Remove(q, value.GetIndex())
}

func (q *nodeQueue[T]) Offer(value T) { heap.Push(q, value) }

func (q *nodeQueue[T]) Push(x any) {
	v := x.(T)
	v.SetIndex(len(q.data))
	q.data = append(q.data, v)
}

func (q *nodeQueue[T]) Pop() any {
	n := len(q.data) - 1
	res := q.data[n]
	res.SetIndex(-1)
	var zero T
	q.data[n] = zero
	q.data = q.data[:n]
	return res
}

func (q *nodeQueue[T]) Len() int {
	return len(q.data)
}

func (q *nodeQueue[T]) Empty() bool {
	return q.Len() == 0
}

func (q *nodeQueue[T]) Less(i, j int) bool { return q.less(q.data[i], q.data[j]) }

func (q *nodeQueue[T]) Swap(i, j int) {
	q.data[i].SetIndex(j)
	q.data[j].SetIndex(i)
	q.data[i], q.data[j] = q.data[j], q.data[i]
}

func searchNodeLess(a, b *searchNode) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

// nodeTable holds the search nodes of one query, keyed by polygon.
type nodeTable struct {
	nodes map[PolyRef]*searchNode
	open  NodeQueue[*searchNode]
	seq   int
}

func newNodeTable() *nodeTable {
	return &nodeTable{
		nodes: make(map[PolyRef]*searchNode),
		open:  NewNodeQueue(searchNodeLess),
	}
}

func (t *nodeTable) get(ref PolyRef) *searchNode {
	return t.nodes[ref]
}

// visit creates the node for ref. It is not opened.
func (t *nodeTable) visit(ref PolyRef) *searchNode {
	node := &searchNode{ref: ref, prevEdge: -1, _index: -1}
	t.nodes[ref] = node
	return node
}

func (t *nodeTable) push(node *searchNode) {
	node.seq = t.seq
	t.seq++
	t.open.Offer(node)
}

// update reorders node after its cost changed. Closed nodes keep their
// new fields but are not reopened.
func (t *nodeTable) update(node *searchNode) {
	if node.isOpen() {
		t.open.Update(node)
	}
}

func (t *nodeTable) close(node *searchNode) {
	if node.isOpen() {
		t.open.Remove(node)
	}
}
