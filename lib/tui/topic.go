// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Disposable is implemented by components that hold subscriptions or
// other listeners. Dispose releases them; calling it again is a no-op.
type Disposable interface {
	Dispose()
}

// Subscription is a registered listener. Close unregisters it and is
// idempotent.
type Subscription interface {
	Close()
}

// Publisher is the subscribe side of a [Topic]. Components accept a
// Publisher so they can listen without being able to publish.
type Publisher[T any] interface {
	// Subscribe registers listener. The listener runs on the bubbletea
	// goroutine during Publish and may return a command to schedule
	// follow-up work (typically an API fetch), or nil.
	Subscribe(listener func(T) tea.Cmd) Subscription
}

// Topic is a typed, synchronous event channel. Listeners run in
// subscription order, and their commands are batched into the single
// command Publish returns.
//
// A Topic is not safe for concurrent use. It is only touched from a
// bubbletea model's Update, which runs on one goroutine.
type Topic[T any] struct {
	nextID    uint64
	listeners []topicListener[T]
}

type topicListener[T any] struct {
	id       uint64
	listener func(T) tea.Cmd
}

var _ Publisher[int] = (*Topic[int])(nil)

// Subscribe implements [Publisher].
func (topic *Topic[T]) Subscribe(listener func(T) tea.Cmd) Subscription {
	topic.nextID++
	id := topic.nextID
	topic.listeners = append(topic.listeners, topicListener[T]{id: id, listener: listener})
	return &topicSubscription[T]{topic: topic, id: id}
}

// Publish delivers value to every current listener and returns their
// batched commands. Listeners added or removed during delivery take
// effect from the next Publish.
func (topic *Topic[T]) Publish(value T) tea.Cmd {
	snapshot := append([]topicListener[T](nil), topic.listeners...)
	var commands []tea.Cmd
	for _, entry := range snapshot {
		if command := entry.listener(value); command != nil {
			commands = append(commands, command)
		}
	}
	return tea.Batch(commands...)
}

// Clear unregisters every listener. Subscriptions already handed out
// become no-ops.
func (topic *Topic[T]) Clear() {
	topic.listeners = nil
}

// Len returns the number of registered listeners.
func (topic *Topic[T]) Len() int {
	return len(topic.listeners)
}

func (topic *Topic[T]) remove(id uint64) {
	for index, entry := range topic.listeners {
		if entry.id == id {
			topic.listeners = append(topic.listeners[:index], topic.listeners[index+1:]...)
			return
		}
	}
}

type topicSubscription[T any] struct {
	topic  *Topic[T]
	id     uint64
	closed bool
}

func (subscription *topicSubscription[T]) Close() {
	if subscription.closed {
		return
	}
	subscription.closed = true
	subscription.topic.remove(subscription.id)
}

// Subscriptions collects the subscriptions a component acquires so
// they can all be released in one Dispose. The zero value is ready to
// use.
type Subscriptions struct {
	entries  []Subscription
	disposed bool
}

// Add records subscription. Adding to an already-disposed set closes
// the subscription immediately.
func (set *Subscriptions) Add(subscription Subscription) {
	if set.disposed {
		subscription.Close()
		return
	}
	set.entries = append(set.entries, subscription)
}

// Dispose closes every recorded subscription and marks the set
// disposed.
func (set *Subscriptions) Dispose() {
	if set.disposed {
		return
	}
	for _, subscription := range set.entries {
		subscription.Close()
	}
	set.entries = nil
	set.disposed = true
}

// Disposed reports whether Dispose has run.
func (set *Subscriptions) Disposed() bool {
	return set.disposed
}
