package kvstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

const DefaultDynamoTableName = "towdispatch-kv"

type kvItem struct {
	PK        string             `dynamodbav:"pk"`
	Hash      map[string]string  `dynamodbav:"h,omitempty"`
	List      []string           `dynamodbav:"l,omitempty"`
	ZSet      map[string]float64 `dynamodbav:"z,omitempty"`
	ExpiresAt int64              `dynamodbav:"expires_at,omitempty"`
}

// DynamoStore emulates the KV data types on a single DynamoDB table.
//
// Table requirements:
//   - PK: pk (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// Pushes are single UpdateItem calls using list_append. Trim, rem and the
// read side of ranges load the whole item; they are read-modify-write and
// offer no more isolation than the rest of the service expects.
type DynamoStore struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

// DynamoAPI is the subset of *dynamodb.Client the store calls.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var (
	_ Store     = (*DynamoStore)(nil)
	_ DynamoAPI = (*dynamodb.Client)(nil)
)

func NewDynamoStore(ddb DynamoAPI, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = DefaultDynamoTableName
	}
	return &DynamoStore{ddb: ddb, tableName: tableName, now: time.Now}
}

// WithClock swaps the time source used for TTL checks.
func (s *DynamoStore) WithClock(now func() time.Time) *DynamoStore {
	s.now = now
	return s
}

func (s *DynamoStore) key(k string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: k},
	}
}

func (s *DynamoStore) getItem(ctx context.Context, key string) (kvItem, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.key(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return kvItem{}, errors.Wrapf(err, "kv get %s", key)
	}
	if len(out.Item) == 0 {
		return kvItem{}, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return kvItem{}, errors.Wrapf(err, "kv decode %s", key)
	}
	// TTL deletion in DynamoDB is lazy; hide expired items like Redis would.
	if it.ExpiresAt > 0 && s.now().Unix() >= it.ExpiresAt {
		return kvItem{}, nil
	}
	return it, nil
}

// clearExpired deletes key when its TTL has passed but DynamoDB has not swept
// it yet, so the next write starts from an empty item as it would in Redis.
func (s *DynamoStore) clearExpired(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(s.tableName),
		Key:                      s.key(key),
		ConditionExpression:      aws.String("#e <= :now"),
		ExpressionAttributeNames: map[string]string{"#e": "expires_at"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(s.now().Unix(), 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return errors.Wrapf(err, "kv clear expired %s", key)
	}
	return nil
}

func (s *DynamoStore) update(ctx context.Context, key, expr string, names map[string]string, values map[string]types.AttributeValue, cond string) error {
	in := &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.tableName),
		Key:                      s.key(key),
		UpdateExpression:         aws.String(expr),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}
	if cond != "" {
		in.ConditionExpression = aws.String(cond)
	}
	_, err := s.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return errors.Wrapf(err, "kv update %s", key)
	}
	return nil
}

func (s *DynamoStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	it, err := s.getItem(ctx, key)
	if err != nil {
		return nil, err
	}
	if it.Hash == nil {
		return map[string]string{}, nil
	}
	return it.Hash, nil
}

func (s *DynamoStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.clearExpired(ctx, key); err != nil {
		return err
	}
	// Nested SET paths fail when the parent map is missing, so create it first.
	if err := s.update(ctx, key, "SET #h = if_not_exists(#h, :empty)",
		map[string]string{"#h": "h"},
		map[string]types.AttributeValue{":empty": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}},
		"",
	); err != nil {
		return err
	}

	names := map[string]string{"#h": "h"}
	values := make(map[string]types.AttributeValue, len(fields))
	expr := "SET "
	i := 0
	for k, v := range fields {
		if i > 0 {
			expr += ", "
		}
		n, val := fmt.Sprintf("#f%d", i), fmt.Sprintf(":v%d", i)
		names[n] = k
		values[val] = &types.AttributeValueMemberS{Value: v}
		expr += "#h." + n + " = " + val
		i++
	}
	return s.update(ctx, key, expr, names, values, "")
}

func (s *DynamoStore) LPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	if err := s.clearExpired(ctx, key); err != nil {
		return err
	}
	return s.update(ctx, key, "SET #l = list_append(:vals, if_not_exists(#l, :empty))",
		map[string]string{"#l": "l"},
		map[string]types.AttributeValue{
			":vals":  stringList(lpushOrder(values)),
			":empty": stringList(nil),
		},
		"",
	)
}

func (s *DynamoStore) RPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	if err := s.clearExpired(ctx, key); err != nil {
		return err
	}
	return s.update(ctx, key, "SET #l = list_append(if_not_exists(#l, :empty), :vals)",
		map[string]string{"#l": "l"},
		map[string]types.AttributeValue{
			":vals":  stringList(values),
			":empty": stringList(nil),
		},
		"",
	)
}

func (s *DynamoStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	it, err := s.getItem(ctx, key)
	if err != nil {
		return nil, err
	}
	return sliceRange(it.List, start, stop), nil
}

func (s *DynamoStore) LTrim(ctx context.Context, key string, start, stop int64) error {
	it, err := s.getItem(ctx, key)
	if err != nil {
		return err
	}
	return s.replaceList(ctx, key, trimList(it.List, start, stop))
}

func (s *DynamoStore) LRem(ctx context.Context, key string, count int64, value string) error {
	it, err := s.getItem(ctx, key)
	if err != nil {
		return err
	}
	return s.replaceList(ctx, key, removeFromList(it.List, count, value))
}

func (s *DynamoStore) replaceList(ctx context.Context, key string, list []string) error {
	if len(list) == 0 {
		return s.update(ctx, key, "REMOVE #l", map[string]string{"#l": "l"}, nil, "attribute_exists(#l)")
	}
	return s.update(ctx, key, "SET #l = :l",
		map[string]string{"#l": "l"},
		map[string]types.AttributeValue{":l": stringList(list)},
		"",
	)
}

func (s *DynamoStore) ZAdd(ctx context.Context, key string, score float64, member string) error {
	if err := s.clearExpired(ctx, key); err != nil {
		return err
	}
	if err := s.update(ctx, key, "SET #z = if_not_exists(#z, :empty)",
		map[string]string{"#z": "z"},
		map[string]types.AttributeValue{":empty": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}},
		"",
	); err != nil {
		return err
	}
	return s.update(ctx, key, "SET #z.#m = :s",
		map[string]string{"#z": "z", "#m": member},
		map[string]types.AttributeValue{":s": &types.AttributeValueMemberN{Value: strconv.FormatFloat(score, 'f', -1, 64)}},
		"",
	)
}

func (s *DynamoStore) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]string, error) {
	it, err := s.getItem(ctx, key)
	if err != nil {
		return nil, err
	}
	return membersByScore(it.ZSet, min, max), nil
}

func (s *DynamoStore) ZRem(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	names := map[string]string{"#z": "z"}
	expr := "REMOVE "
	for i, m := range members {
		if i > 0 {
			expr += ", "
		}
		n := fmt.Sprintf("#m%d", i)
		names[n] = m
		expr += "#z." + n
	}
	return s.update(ctx, key, expr, names, nil, "attribute_exists(#z)")
}

func (s *DynamoStore) ZCard(ctx context.Context, key string) (int64, error) {
	it, err := s.getItem(ctx, key)
	if err != nil {
		return 0, err
	}
	return int64(len(it.ZSet)), nil
}

func (s *DynamoStore) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(s.tableName),
			Key:       s.key(k),
		})
		if err != nil {
			return errors.Wrapf(err, "kv del %s", k)
		}
	}
	return nil
}

func (s *DynamoStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.clearExpired(ctx, key); err != nil {
		return err
	}
	at := s.now().Add(ttl).Unix()
	return s.update(ctx, key, "SET #e = :e",
		map[string]string{"#e": "expires_at", "#pk": "pk"},
		map[string]types.AttributeValue{":e": &types.AttributeValueMemberN{Value: strconv.FormatInt(at, 10)}},
		"attribute_exists(#pk)",
	)
}

func stringList(values []string) *types.AttributeValueMemberL {
	out := make([]types.AttributeValue, len(values))
	for i, v := range values {
		out[i] = &types.AttributeValueMemberS{Value: v}
	}
	return &types.AttributeValueMemberL{Value: out}
}
