package tui

import "github.com/localrail/railbook/models"

type authDoneMsg struct {
	user   models.User
	signup bool
	err    error
}

type bookingsLoadedMsg struct {
	tickets []models.Ticket
	err     error
}

type searchDoneMsg struct {
	trains []models.Train
	err    error
}

type seatsLoadedMsg struct {
	grid [][]int
	err  error
}

type bookDoneMsg struct {
	ticket models.Ticket
	err    error
}

type cancelDoneMsg struct {
	err error
}

type copiedMsg struct{}
