package util

import "encoding/json"

func Serialize(data any) (json.RawMessage, error) {
	bytes, err := json.Marshal(data)

	if err != nil {
		return nil, err
	}

	return json.RawMessage(bytes), nil
}
