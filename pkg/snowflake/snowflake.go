package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenIDString SQL 存储下笔记 ID 的字符串形式
func GenIDString() string {
	return node.Generate().String()
}

// ParseID 校验是否为合法的雪花 ID
func ParseID(s string) (int64, bool) {
	id, err := snowflake.ParseString(s)
	if err != nil || id.Int64() <= 0 {
		return 0, false
	}
	return id.Int64(), true
}
