// Package queue реализует ограниченную блокирующую FIFO-очередь
// поверх кольцевого буфера фиксированной ёмкости.
package queue

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidCapacity = errors.New("queue capacity must be positive")
	ErrQueueClosed     = errors.New("queue is closed")
)

// BoundedQueue очередь фиксированной ёмкости с блокирующими Push/Pop.
// Один мьютекс сериализует все операции; два условия разделяют
// ожидающих по предикату: производители ждут notFull, потребители
// ждут notEmpty, поэтому пробуждение после Pop будит только
// производителей, а после Push — только потребителей.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	// кольцевой буфер: head указывает на первый занятый слот,
	// tail — на первый свободный, оба двигаются по модулю ёмкости
	buf   []T
	head  int
	tail  int
	count int

	closed bool
}

func New[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &BoundedQueue[T]{buf: make([]T, capacity)}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Push блокируется, пока очередь заполнена, затем вставляет элемент
// в хвост и будит одного потребителя. Возвращает ErrQueueClosed,
// если очередь была закрыта до вставки. Без таймаутов: если очередь
// никогда не опустошается, Push не вернётся.
func (q *BoundedQueue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	// предикат перепроверяется в цикле: ложные пробуждения и гонка
	// нескольких производителей за один слот
	for q.count == len(q.buf) && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		return ErrQueueClosed
	}

	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++
	q.checkInvariant()

	q.notEmpty.Signal()
	return nil
}

// Pop блокируется, пока очередь пуста и не закрыта, затем снимает
// элемент с головы (FIFO) и будит одного производителя. Когда очередь
// пуста и закрыта, возвращает нулевое значение и false: задач больше
// не будет.
func (q *BoundedQueue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	if q.count == 0 {
		var zero T
		return zero, false
	}

	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero // не держим ссылку на отданный элемент
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	q.checkInvariant()

	q.notFull.Signal()
	return v, true
}

// Close помечает очередь закрытой и будит всех ожидающих.
// Уже поставленные задачи остаются доступными через Pop.
// Повторный вызов безопасен.
func (q *BoundedQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

func (q *BoundedQueue[T]) Cap() int {
	return len(q.buf)
}

// checkInvariant вызывается под мьютексом после каждой мутации.
// Нарушение границ счётчика — дефект реализации, а не ошибка
// пользователя, поэтому паника.
func (q *BoundedQueue[T]) checkInvariant() {
	if q.count < 0 || q.count > len(q.buf) {
		panic(fmt.Sprintf("queue: count %d out of range [0, %d]", q.count, len(q.buf)))
	}
}
