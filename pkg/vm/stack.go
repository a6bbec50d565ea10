package vm

// StackCapacity is the maximum depth of a Stack.
const StackCapacity = 1024

// Stack is a bounded LIFO of integers.
//
// A failed operation leaves the stack unchanged.
type Stack struct {
	data     []int32
	capacity int
}

// NewStack creates an empty stack bounded at StackCapacity.
func NewStack() *Stack {
	return NewStackSize(StackCapacity)
}

// NewStackSize creates an empty stack bounded at capacity elements.
func NewStackSize(capacity int) *Stack {
	return &Stack{
		data:     make([]int32, 0, 16),
		capacity: capacity,
	}
}

// Push pushes v onto the stack.
func (s *Stack) Push(v int32) error {
	if len(s.data) >= s.capacity {
		return ErrStackOverflow
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack) Pop() (int32, error) {
	if len(s.data) == 0 {
		return 0, ErrStackUnderflow
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack) Peek() (int32, error) {
	if len(s.data) == 0 {
		return 0, ErrEmptyStack
	}
	return s.data[len(s.data)-1], nil
}

// Dup pushes a copy of the top element.
func (s *Stack) Dup() error {
	if len(s.data) == 0 {
		return ErrStackUnderflow
	}
	return s.Push(s.data[len(s.data)-1])
}

// Swap exchanges the top two elements.
func (s *Stack) Swap() error {
	n := len(s.data)
	if n < 2 {
		return ErrStackUnderflow
	}
	s.data[n-1], s.data[n-2] = s.data[n-2], s.data[n-1]
	return nil
}

// Len returns the current depth.
func (s *Stack) Len() int {
	return len(s.data)
}

// Cap returns the maximum depth.
func (s *Stack) Cap() int {
	return s.capacity
}

// Empty reports whether the stack has no elements.
func (s *Stack) Empty() bool {
	return len(s.data) == 0
}

// Reset removes all elements.
func (s *Stack) Reset() {
	s.data = s.data[:0]
}

// Values returns a copy of the elements, bottom first.
func (s *Stack) Values() []int32 {
	out := make([]int32, len(s.data))
	copy(out, s.data)
	return out
}
