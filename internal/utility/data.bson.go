package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển struct thành map[string]interface{} theo bson tag.
// Dùng khi cần thêm field động (timestamps) trước khi insert/update.
func ToMap(s interface{}) (map[string]interface{}, error) {
	if m, ok := s.(map[string]interface{}); ok {
		return m, nil
	}

	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal struct thất bại: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal thành map thất bại: %w", err)
	}
	return result, nil
}
