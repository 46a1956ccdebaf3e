package database

import (
	"fmt"
	"reflect"

	"github.com/komo3344/airbnb-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var tDate = reflect.TypeOf(models.Date{})

// NewRegistry returns the default BSON registry extended to store models.Date
// as a "YYYY-MM-DD" string, which keeps range queries ordered lexically.
func NewRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tDate, bsoncodec.ValueEncoderFunc(dateEncodeValue))
	reg.RegisterTypeDecoder(tDate, bsoncodec.ValueDecoderFunc(dateDecodeValue))
	return reg
}

func dateEncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tDate {
		return bsoncodec.ValueEncoderError{Name: "dateEncodeValue", Types: []reflect.Type{tDate}, Received: val}
	}
	return vw.WriteString(val.Interface().(models.Date).String())
}

func dateDecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tDate {
		return bsoncodec.ValueDecoderError{Name: "dateDecodeValue", Types: []reflect.Type{tDate}, Received: val}
	}
	switch vr.Type() {
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		d, err := models.ParseDate(s)
		if err != nil {
			return fmt.Errorf("decode date %q: %w", s, err)
		}
		val.Set(reflect.ValueOf(d))
		return nil
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		val.Set(reflect.Zero(tDate))
		return nil
	default:
		return fmt.Errorf("cannot decode %v into a date", vr.Type())
	}
}
