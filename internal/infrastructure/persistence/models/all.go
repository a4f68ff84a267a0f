package models

// All returns every persisted model, in creation order.
func All() []interface{} {
	return []interface{}{
		&CustomerModel{},
		&UserModel{},
		&DefaultReasonModel{},
		&RecoveryReasonModel{},
		&DefaultApplicationModel{},
		&RecoveryApplicationModel{},
	}
}
