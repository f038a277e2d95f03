package minesweeper

import "sync"

// SyncBoard serializes access to a Board. Play mutates the exposed count
// and per-cell state in read-modify-write steps, so boards shared between
// goroutines must go through a single lock.
type SyncBoard struct {
	mu    sync.Mutex
	board *Board
}

// NewSyncBoard wraps b. b must not be used directly afterwards.
func NewSyncBoard(b *Board) *SyncBoard {
	return &SyncBoard{board: b}
}

// Initialize calls Board.Initialize under the lock.
func (s *SyncBoard) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Initialize()
}

// Play calls Board.Play under the lock.
func (s *SyncBoard) Play(row, col int, flag bool) (PlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Play(row, col, flag)
}

// ExposeAll calls Board.ExposeAll under the lock.
func (s *SyncBoard) ExposeAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.ExposeAll()
}

// Cell calls Board.Cell under the lock.
func (s *SyncBoard) Cell(row, col int) (CellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Cell(row, col)
}

// State returns the current game state.
func (s *SyncBoard) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.state
}

// ExposedCount returns the number of exposed cells.
func (s *SyncBoard) ExposedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.exposed
}
