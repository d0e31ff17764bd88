package domain

import "time"

// Cinema is a venue containing rooms.
type Cinema struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Room is a screening room inside a cinema.
type Room struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Seats     int       `json:"seats"`
	CinemaUID string    `json:"cinema"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Seance is a scheduled screening of a movie in a room. The movie uid points
// at an entity owned by the movie service.
type Seance struct {
	UID       string    `json:"uid"`
	MovieUID  string    `json:"movie"`
	Date      time.Time `json:"date"`
	RoomUID   string    `json:"room"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
