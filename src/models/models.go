package models

// AllModels lists every model in migration order
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&StandardTypeModel{},
		&QuantTypeModel{},
		&StandardModel{},
		&AssayModel{},
		&InputModel{},
		&QuantModel{},
	}
}
