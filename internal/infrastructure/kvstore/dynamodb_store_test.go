package kvstore

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestDynamoStore(t *testing.T) {
	runStoreSuite(t, NewDynamoStore(newFakeDynamo(), ""))
}

func TestDynamoStore_Expire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewDynamoStore(newFakeDynamo(), "").WithClock(func() time.Time { return now })

	require.NoError(t, s.HSet(ctx, "visitor:1", map[string]string{"old": "1"}))
	require.NoError(t, s.Expire(ctx, "visitor:1", time.Hour))
	require.NoError(t, s.LPush(ctx, "list:1", "stale"))
	require.NoError(t, s.Expire(ctx, "list:1", time.Hour))
	require.NoError(t, s.HSet(ctx, "ghost", map[string]string{"x": "1"}))
	require.NoError(t, s.Expire(ctx, "ghost", time.Hour))

	got, err := s.HGetAll(ctx, "visitor:1")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"old": "1"}, got)

	now = now.Add(2 * time.Hour)

	got, err = s.HGetAll(ctx, "visitor:1")
	require.NoError(t, err)
	require.Empty(t, got)

	// Writes to an expired but unswept item start from scratch.
	require.NoError(t, s.HSet(ctx, "visitor:1", map[string]string{"new": "2"}))
	got, err = s.HGetAll(ctx, "visitor:1")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"new": "2"}, got)

	require.NoError(t, s.LPush(ctx, "list:1", "fresh"))
	list, err := s.LRange(ctx, "list:1", 0, -1)
	require.NoError(t, err)
	require.Equal(t, []string{"fresh"}, list)

	// Expire never revives an expired item.
	require.NoError(t, s.Expire(ctx, "ghost", time.Hour))
	got, err = s.HGetAll(ctx, "ghost")
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestDynamoStore_Local runs the suite against DynamoDB Local when
// DYNAMODB_ENDPOINT is set, e.g. http://localhost:8000.
func TestDynamoStore_Local(t *testing.T) {
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if endpoint == "" {
		t.Skip("DYNAMODB_ENDPOINT not set")
	}
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("ap-southeast-2"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
	)
	require.NoError(t, err)
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	table := fmt.Sprintf("kvstore-test-%d", time.Now().UnixNano())
	_, err = client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(table),
		AttributeDefinitions: []types.AttributeDefinition{{AttributeName: aws.String("pk"), AttributeType: types.ScalarAttributeTypeS}},
		KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String("pk"), KeyType: types.KeyTypeHash}},
		BillingMode:          types.BillingModePayPerRequest,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = client.DeleteTable(context.Background(), &dynamodb.DeleteTableInput{TableName: aws.String(table)})
	})
	require.NoError(t, dynamodb.NewTableExistsWaiter(client).Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, 30*time.Second))

	runStoreSuite(t, NewDynamoStore(client, table))
}

// fakeDynamo keeps items in memory and interprets the update and condition
// expressions DynamoStore sends: SET with if_not_exists and list_append,
// REMOVE, two-level document paths, attribute_exists and <=.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[fakePK(in.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pk := fakePK(in.Key)
	item := f.items[pk]
	if in.ConditionExpression != nil && !evalCondition(item, aws.ToString(in.ConditionExpression), in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}

	next := copyItem(item)
	if next == nil {
		next = map[string]types.AttributeValue{"pk": in.Key["pk"]}
	}
	expr := aws.ToString(in.UpdateExpression)
	switch {
	case strings.HasPrefix(expr, "SET "):
		for _, clause := range splitTop(strings.TrimPrefix(expr, "SET ")) {
			lhs, rhs, ok := strings.Cut(clause, " = ")
			if !ok {
				return nil, fmt.Errorf("bad SET clause %q", clause)
			}
			v, err := evalOperand(next, strings.TrimSpace(rhs), in.ExpressionAttributeNames, in.ExpressionAttributeValues)
			if err != nil {
				return nil, err
			}
			if err := setPath(next, resolvePath(lhs, in.ExpressionAttributeNames), v); err != nil {
				return nil, err
			}
		}
	case strings.HasPrefix(expr, "REMOVE "):
		for _, p := range splitTop(strings.TrimPrefix(expr, "REMOVE ")) {
			removePath(next, resolvePath(p, in.ExpressionAttributeNames))
		}
	default:
		return nil, fmt.Errorf("unsupported update expression %q", expr)
	}
	f.items[pk] = next
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pk := fakePK(in.Key)
	if in.ConditionExpression != nil && !evalCondition(f.items[pk], aws.ToString(in.ConditionExpression), in.ExpressionAttributeNames, in.ExpressionAttributeValues) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	delete(f.items, pk)
	return &dynamodb.DeleteItemOutput{}, nil
}

func fakePK(key map[string]types.AttributeValue) string {
	return key["pk"].(*types.AttributeValueMemberS).Value
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	if item == nil {
		return nil
	}
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func evalCondition(item map[string]types.AttributeValue, cond string, names map[string]string, values map[string]types.AttributeValue) bool {
	if inner, ok := strings.CutPrefix(cond, "attribute_exists("); ok {
		_, found := getPath(item, resolvePath(strings.TrimSuffix(inner, ")"), names))
		return found
	}
	if lhs, rhs, ok := strings.Cut(cond, " <= "); ok {
		v, found := getPath(item, resolvePath(lhs, names))
		if !found {
			return false
		}
		return fakeNumber(v) <= fakeNumber(values[strings.TrimSpace(rhs)])
	}
	panic("unsupported condition " + cond)
}

func evalOperand(item map[string]types.AttributeValue, op string, names map[string]string, values map[string]types.AttributeValue) (types.AttributeValue, error) {
	switch {
	case strings.HasPrefix(op, ":"):
		v, ok := values[op]
		if !ok {
			return nil, fmt.Errorf("missing value %s", op)
		}
		return v, nil
	case strings.HasPrefix(op, "if_not_exists("):
		args := splitTop(strings.TrimSuffix(strings.TrimPrefix(op, "if_not_exists("), ")"))
		if v, found := getPath(item, resolvePath(args[0], names)); found {
			return v, nil
		}
		return evalOperand(item, args[1], names, values)
	case strings.HasPrefix(op, "list_append("):
		args := splitTop(strings.TrimSuffix(strings.TrimPrefix(op, "list_append("), ")"))
		a, err := evalOperand(item, args[0], names, values)
		if err != nil {
			return nil, err
		}
		b, err := evalOperand(item, args[1], names, values)
		if err != nil {
			return nil, err
		}
		la, lb := a.(*types.AttributeValueMemberL), b.(*types.AttributeValueMemberL)
		joined := append(append([]types.AttributeValue{}, la.Value...), lb.Value...)
		return &types.AttributeValueMemberL{Value: joined}, nil
	}
	return nil, fmt.Errorf("unsupported operand %q", op)
}

// splitTop splits on commas outside parentheses.
func splitTop(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(out, strings.TrimSpace(s[start:]))
}

func resolvePath(p string, names map[string]string) []string {
	parts := strings.Split(strings.TrimSpace(p), ".")
	for i, part := range parts {
		if n, ok := names[part]; ok {
			parts[i] = n
		}
	}
	return parts
}

func getPath(item map[string]types.AttributeValue, path []string) (types.AttributeValue, bool) {
	v, ok := item[path[0]]
	for _, p := range path[1:] {
		if !ok {
			return nil, false
		}
		m, isMap := v.(*types.AttributeValueMemberM)
		if !isMap {
			return nil, false
		}
		v, ok = m.Value[p]
	}
	return v, ok
}

func setPath(item map[string]types.AttributeValue, path []string, v types.AttributeValue) error {
	if len(path) == 1 {
		item[path[0]] = v
		return nil
	}
	parent, ok := item[path[0]].(*types.AttributeValueMemberM)
	if !ok {
		return fmt.Errorf("the document path provided in the update expression is invalid for update: %s", path[0])
	}
	m := make(map[string]types.AttributeValue, len(parent.Value)+1)
	for k, pv := range parent.Value {
		m[k] = pv
	}
	m[path[1]] = v
	item[path[0]] = &types.AttributeValueMemberM{Value: m}
	return nil
}

func removePath(item map[string]types.AttributeValue, path []string) {
	if len(path) == 1 {
		delete(item, path[0])
		return
	}
	parent, ok := item[path[0]].(*types.AttributeValueMemberM)
	if !ok {
		return
	}
	m := make(map[string]types.AttributeValue, len(parent.Value))
	for k, pv := range parent.Value {
		if k != path[1] {
			m[k] = pv
		}
	}
	item[path[0]] = &types.AttributeValueMemberM{Value: m}
}

func fakeNumber(v types.AttributeValue) float64 {
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	f, _ := strconv.ParseFloat(n.Value, 64)
	return f
}
