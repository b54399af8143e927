package stack_test

import (
	"testing"

	"github.com/lanrat/classicsort/stack"
)

func TestEmpty(t *testing.T) {
	s := stack.New[int](0)
	if l := s.Len(); l != 0 {
		t.Fatalf("stack len is %d, expected %d", l, 0)
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop on empty stack returned ok")
	}
}

func TestNegativeHint(t *testing.T) {
	s := stack.New[int](-5)
	s.Push(1)
	if l := s.Len(); l != 1 {
		t.Fatalf("stack len is %d, expected %d", l, 1)
	}
}

func TestLIFO(t *testing.T) {
	s := stack.New[int](4)
	for i := 1; i <= 20; i++ {
		s.Push(i)
	}
	if l := s.Len(); l != 20 {
		t.Fatalf("stack len is %d, expected %d", l, 20)
	}

	for i := 20; s.Len() > 0; i-- {
		y, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop returned !ok with len %d", s.Len())
		}
		if y != i {
			t.Errorf("pop got %d; want %d", y, i)
		}
	}
}

func TestHighWater(t *testing.T) {
	s := stack.New[string](0)
	s.Push("a")
	s.Push("b")
	s.Push("c")
	s.Pop()
	s.Pop()
	s.Push("d")
	if h := s.HighWater(); h != 3 {
		t.Fatalf("HighWater is %d, expected %d", h, 3)
	}
	if l := s.Len(); l != 2 {
		t.Fatalf("stack len is %d, expected %d", l, 2)
	}
	if x, _ := s.Pop(); x != "d" {
		t.Fatalf("Pop returned %q, expected %q", x, "d")
	}
}

type span struct {
	start, end int
}

func TestStructValues(t *testing.T) {
	s := stack.New[span](2)
	s.Push(span{0, 4})
	s.Push(span{5, 9})
	got, ok := s.Pop()
	if !ok || got != (span{5, 9}) {
		t.Fatalf("Pop returned %v %v, expected %v", got, ok, span{5, 9})
	}
	got, ok = s.Pop()
	if !ok || got != (span{0, 4}) {
		t.Fatalf("Pop returned %v %v, expected %v", got, ok, span{0, 4})
	}
}
