package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultAvatarURL = "https://avatars.githubusercontent.com/u/219873324?s=400&v=4"

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	IsAdmin   bool               `json:"isAdmin" bson:"isAdmin"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
