package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidTableSize - Custom error to inform that a table size (number of buckets) is not a positive value
type InvalidTableSize struct {
	msg string
}

// Error - Used to notify that the table size is invalid
func (E InvalidTableSize) Error() string {
	if E.msg == "" {
		return "table size must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// BucketOutOfRange - Custom error to inform that a hash algorithm produced a bucket number outside the table
type BucketOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket number is outside permitted range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number from hash algorithm is outside permitted range"
	}
	return B.msg
}
