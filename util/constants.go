package util

const (
	PATIENT_REQUIRED_FIELDS = "Please provide all required fields: name, email, password"
	DOCTOR_REQUIRED_FIELDS  = "Please provide all required fields: name, email, password"
	EMAIL_PASSWORD_REQUIRED = "Please provide email and password"

	PATIENT_ALREADY_EXISTS = "Patient already exists with this email"
	DOCTOR_ALREADY_EXISTS  = "Doctor already exists with this email"

	INVALID_CREDENTIALS = "Invalid email or password"
	PATIENT_NOT_FOUND   = "Patient not found"

	PRESCRIPTION_REQUIRED_FIELDS = "Please provide all required fields: date, doctor, medications, instructions, diagnosis"

	TOKEN_NOT_PROVIDED = "Authorization token not provided"
	TOKEN_INVALID      = "Invalid or expired token"
	ACCESS_DENIED      = "You do not have access to this patient record"

	SERVER_ERROR = "Server error"

	PATIENT_ID_PREFIX = "P"
	DOCTOR_ID_PREFIX  = "D"

	PATIENT_COLLECTION = "patients"
	DOCTOR_COLLECTION  = "doctors"

	DEFAULT_AGE            = 30
	DEFAULT_GENDER         = "Not specified"
	DEFAULT_SPECIALIZATION = "General Medicine"
	DEFAULT_HOSPITAL       = "General Hospital"
)
