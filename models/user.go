package models

import "time"

// UserCredential is the single per-user record: profile fields, the bcrypt
// password hash, the outstanding login OTP (nil when no challenge is live)
// and the verification flag.
type UserCredential struct {
	Email        string    `bson:"email" json:"email"`
	FirstName    string    `bson:"fname" json:"fname"`
	LastName     string    `bson:"lname" json:"lname"`
	DOB          string    `bson:"dob" json:"dob"`
	MobileNo     string    `bson:"mobile_no" json:"mobile_no"`
	PasswordHash string    `bson:"password" json:"-"`
	OTP          *string   `bson:"otp" json:"-"`
	Verified     bool      `bson:"isVerified" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserProfile is the non-secret view returned to clients. Its presence on the
// device is what the client treats as a logged-in session.
type UserProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	DOB       string `json:"dob"`
	MobileNo  string `json:"mobile_no"`
}

// Profile projects the credential record down to its client-safe fields.
func (u *UserCredential) Profile() UserProfile {
	return UserProfile{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		DOB:       u.DOB,
		MobileNo:  u.MobileNo,
	}
}
