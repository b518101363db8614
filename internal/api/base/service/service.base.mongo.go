// Package basesvc cung cấp base service generic cho các thao tác CRUD trên MongoDB.
// Các service domain embed BaseServiceMongoImpl để kế thừa đầy đủ CRUD,
// chỉ viết thêm các nghiệp vụ đặc thù của domain.
package basesvc

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "arts_crm/internal/api/base/models"
	"arts_crm/internal/common"
	"arts_crm/internal/utility"
)

// ==========================================
// KIỂU DỮ LIỆU UPDATE
// ==========================================

// UpdateData định nghĩa kiểu dữ liệu cho partial update
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi insert (upsert tạo mới)
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Các trường cần xóa
	Push        map[string]interface{} `bson:"$push,omitempty"`        // Các trường cần thêm vào array
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`    // Các trường cần thêm vào set
}

// ToUpdateData chuẩn hóa input update về *UpdateData.
// Hỗ trợ: *UpdateData, UpdateData, []byte (JSON), map có sẵn toán tử $,
// map thường (wrap vào $set), và struct bất kỳ (convert qua utility.ToMap rồi wrap vào $set).
func ToUpdateData(data interface{}) (*UpdateData, error) {
	if data == nil {
		return nil, fmt.Errorf("dữ liệu update rỗng: %w", common.ErrRequiredField)
	}

	switch v := data.(type) {
	case *UpdateData:
		return v, nil
	case UpdateData:
		return &v, nil
	case []byte:
		var raw map[string]interface{}
		if err := json.Unmarshal(v, &raw); err != nil {
			return nil, fmt.Errorf("dữ liệu update không phải JSON hợp lệ: %w", common.ErrInvalidFormat)
		}
		return mapToUpdateData(raw), nil
	case map[string]interface{}:
		return mapToUpdateData(v), nil
	case bson.M:
		return mapToUpdateData(map[string]interface{}(v)), nil
	default:
		m, err := utility.ToMap(data)
		if err != nil {
			return nil, fmt.Errorf("không chuyển được dữ liệu update sang map: %w", err)
		}
		return mapToUpdateData(m), nil
	}
}

// mapToUpdateData phân loại map: nếu có toán tử $ thì map từng toán tử,
// ngược lại toàn bộ map được wrap vào $set.
func mapToUpdateData(m map[string]interface{}) *UpdateData {
	hasOperator := false
	for k := range m {
		if len(k) > 0 && k[0] == '$' {
			hasOperator = true
			break
		}
	}

	result := &UpdateData{}
	if !hasOperator {
		result.Set = m
		return result
	}

	for k, v := range m {
		sub, ok := v.(map[string]interface{})
		if !ok {
			if bm, okBson := v.(bson.M); okBson {
				sub = map[string]interface{}(bm)
				ok = true
			}
		}
		if !ok {
			continue
		}
		switch k {
		case "$set":
			result.Set = sub
		case "$setOnInsert":
			result.SetOnInsert = sub
		case "$unset":
			result.Unset = sub
		case "$push":
			result.Push = sub
		case "$addToSet":
			result.AddToSet = sub
		}
	}
	return result
}

// toUpdateDocument chuyển *UpdateData thành bson.M, tự động thêm updatedAt vào $set.
func toUpdateDocument(u *UpdateData) bson.M {
	doc := bson.M{}
	set := u.Set
	if set == nil {
		set = map[string]interface{}{}
	}
	set["updatedAt"] = utility.CurrentTimeInMilli()
	doc["$set"] = set

	if len(u.SetOnInsert) > 0 {
		doc["$setOnInsert"] = u.SetOnInsert
	}
	if len(u.Unset) > 0 {
		doc["$unset"] = u.Unset
	}
	if len(u.Push) > 0 {
		doc["$push"] = u.Push
	}
	if len(u.AddToSet) > 0 {
		doc["$addToSet"] = u.AddToSet
	}
	return doc
}

// ==========================================
// INTERFACE BASE SERVICE
// ==========================================

// BaseServiceMongo định nghĩa đầy đủ các thao tác CRUD trên một collection MongoDB.
type BaseServiceMongo[T any] interface {
	// Create
	InsertOne(ctx context.Context, data T) (T, error)
	InsertMany(ctx context.Context, data []T) ([]T, error)

	// Read
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64) (*basemodels.PaginateResult[T], error)

	// Update
	UpdateOne(ctx context.Context, filter interface{}, data interface{}) (T, error)
	UpdateMany(ctx context.Context, filter interface{}, data interface{}) (int64, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, data interface{}, opts *options.FindOneAndUpdateOptions) (T, error)

	// Delete
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	FindOneAndDelete(ctx context.Context, filter interface{}) (T, error)

	// Khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Upsert(ctx context.Context, filter interface{}, data T) (T, error)
	UpsertMany(ctx context.Context, filter interface{}, data []T) ([]T, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)

	// Collection trả về collection bên dưới để thao tác trực tiếp (aggregate, ...)
	Collection() *mongo.Collection
}

// BaseServiceMongoImpl là implementation mặc định của BaseServiceMongo.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo tạo base service mới trên collection cho trước
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection bên dưới
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// normalizeFilter đảm bảo filter không nil (nil → match tất cả)
func normalizeFilter(filter interface{}) interface{} {
	if filter == nil {
		return bson.M{}
	}
	return filter
}

// applyInsertDefaults chuẩn bị document để insert: xóa field chuỗi rỗng
// (tránh đụng sparse unique index) và set createdAt/updatedAt (Unix milli).
func applyInsertDefaults(data interface{}) (map[string]interface{}, error) {
	m, err := utility.ToMap(data)
	if err != nil {
		return nil, fmt.Errorf("không chuyển được model sang map: %w", err)
	}

	for k, v := range m {
		if str, ok := v.(string); ok && str == "" {
			delete(m, k)
		}
	}

	// Xóa _id rỗng để MongoDB tự sinh
	if id, ok := m["_id"]; ok {
		if oid, isOid := id.(primitive.ObjectID); isOid && oid.IsZero() {
			delete(m, "_id")
		}
	}

	now := utility.CurrentTimeInMilli()
	m["createdAt"] = now
	m["updatedAt"] = now
	return m, nil
}

// ==========================================
// CREATE
// ==========================================

// InsertOne chèn một document mới, tự set createdAt/updatedAt,
// rồi đọc lại document vừa chèn để trả về bản ghi đầy đủ.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := applyInsertDefaults(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var inserted T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&inserted); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return inserted, nil
}

// InsertMany chèn nhiều documents, trả về danh sách bản ghi đã chèn.
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	docs := make([]interface{}, 0, len(data))
	for _, item := range data {
		doc, err := applyInsertDefaults(item)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
		}
		docs = append(docs, doc)
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return s.FindManyByIds(ctx, objectIDs(result.InsertedIDs))
}

// objectIDs lọc danh sách InsertedIDs về []primitive.ObjectID
func objectIDs(ids []interface{}) []primitive.ObjectID {
	result := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := id.(primitive.ObjectID); ok {
			result = append(result, oid)
		}
	}
	return result
}

// ==========================================
// READ
// ==========================================

// FindOne tìm một document theo filter.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T

	var result T
	err := s.collection.FindOne(ctx, normalizeFilter(filter), opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return result, nil
}

// FindOneById tìm một document theo ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindManyByIds tìm nhiều documents theo danh sách ObjectID
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// Find tìm tất cả documents khớp filter. Luôn trả về slice (không bao giờ nil).
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, normalizeFilter(filter), opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}

// FindWithPagination tìm documents với phân trang.
// page bắt đầu từ 1; limit được kẹp trong [1, 1000].
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page int64, limit int64) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 1000 {
		limit = 1000
	}

	filter = normalizeFilter(filter)

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	findOpts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	items, err := s.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: (total + limit - 1) / limit,
	}, nil
}

// ==========================================
// UPDATE
// ==========================================

// UpdateOne cập nhật một document khớp filter rồi đọc lại bản ghi sau cập nhật.
// Trả về common.ErrNotFound nếu không có document nào khớp.
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T

	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, err
	}

	filter = normalizeFilter(filter)
	result, err := s.collection.UpdateOne(ctx, filter, toUpdateDocument(updateData))
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return zero, common.ErrNotFound
	}

	return s.FindOne(ctx, filter, nil)
}

// UpdateMany cập nhật nhiều documents khớp filter, trả về số document đã sửa.
func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, data interface{}) (int64, error) {
	updateData, err := ToUpdateData(data)
	if err != nil {
		return 0, err
	}

	result, err := s.collection.UpdateMany(ctx, normalizeFilter(filter), toUpdateDocument(updateData))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return result.ModifiedCount, nil
}

// UpdateById cập nhật một document theo ObjectID rồi đọc lại bản ghi sau cập nhật
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, data)
}

// FindOneAndUpdate tìm và cập nhật một document trong một thao tác atomic.
// Mặc định trả về document SAU khi cập nhật.
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, data interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T

	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, err
	}

	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	if opts.ReturnDocument == nil {
		opts.SetReturnDocument(options.After)
	}

	var result T
	err = s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), toUpdateDocument(updateData), opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return result, nil
}

// ==========================================
// DELETE
// ==========================================

// DeleteOne xóa một document khớp filter.
// Trả về common.ErrNotFound nếu không có document nào bị xóa.
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, normalizeFilter(filter))
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteMany xóa nhiều documents khớp filter, trả về số document đã xóa
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteById xóa một document theo ObjectID
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// FindOneAndDelete tìm và xóa một document, trả về document đã xóa
func (s *BaseServiceMongoImpl[T]) FindOneAndDelete(ctx context.Context, filter interface{}) (T, error) {
	var zero T

	var result T
	err := s.collection.FindOneAndDelete(ctx, normalizeFilter(filter)).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return result, nil
}

// ==========================================
// KHÁC
// ==========================================

// CountDocuments đếm số documents khớp filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct trả về các giá trị khác nhau của một field trên các documents khớp filter
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if fieldName == "" {
		return nil, fmt.Errorf("fieldName rỗng: %w", common.ErrRequiredField)
	}

	values, err := s.collection.Distinct(ctx, fieldName, normalizeFilter(filter))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// Upsert cập nhật document khớp filter hoặc chèn mới nếu chưa có.
// Trả về document sau thao tác.
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T

	m, err := utility.ToMap(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}

	// Không ghi đè _id khi update; createdAt chỉ set khi insert
	delete(m, "_id")
	delete(m, "createdAt")
	for k, v := range m {
		if str, ok := v.(string); ok && str == "" {
			delete(m, k)
		}
	}

	updateData := &UpdateData{
		Set:         m,
		SetOnInsert: map[string]interface{}{"createdAt": utility.CurrentTimeInMilli()},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result T
	err = s.collection.FindOneAndUpdate(ctx, normalizeFilter(filter), toUpdateDocument(updateData), opts).Decode(&result)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return result, nil
}

// UpsertMany upsert từng phần tử theo filter chung. Dùng cho các batch nhỏ.
func (s *BaseServiceMongoImpl[T]) UpsertMany(ctx context.Context, filter interface{}, data []T) ([]T, error) {
	results := make([]T, 0, len(data))
	for _, item := range data {
		result, err := s.Upsert(ctx, filter, item)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// DocumentExists kiểm tra có document nào khớp filter không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, normalizeFilter(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// NonZeroFieldsToMap chuyển struct thành map chỉ chứa các field khác zero-value.
// Dùng cho partial update: chỉ các field client gửi lên mới được ghi đè.
func NonZeroFieldsToMap(data interface{}) (map[string]interface{}, error) {
	m, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{}
	for k, v := range m {
		if k == "_id" || k == "createdAt" || k == "updatedAt" {
			continue
		}
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.IsZero() {
			continue
		}
		result[k] = v
	}
	return result, nil
}
