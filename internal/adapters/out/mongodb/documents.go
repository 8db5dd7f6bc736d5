package mongodb

import (
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type clinicDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	OpeningHours map[string]string  `bson:"openinghours"`
}

func (d clinicDocument) toDomain() *domain.Clinic {
	hours := make(domain.OpeningHours, len(d.OpeningHours))
	for weekday, interval := range d.OpeningHours {
		hours[weekday] = interval
	}

	return &domain.Clinic{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		OpeningHours: hours,
	}
}

type dentistDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"name"`
	Clinic     primitive.ObjectID `bson:"clinic"`
	LunchBreak string             `bson:"lunchBreak"`
	FikaBreak  string             `bson:"fikaBreak"`
}

func (d dentistDocument) toDomain() domain.Dentist {
	return domain.Dentist{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		ClinicID:   d.Clinic.Hex(),
		LunchBreak: d.LunchBreak,
		FikaBreak:  d.FikaBreak,
	}
}
