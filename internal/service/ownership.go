package service

// OwnsAdvice 删除授权判定：调用者 id 必须等于留言记录的 target_profile_id。
// 删除路径用特权连接绕过了存储层的行级策略，这个判定是唯一一道防线，
// 单独成函数以便脱离存储独立测试。
func OwnsAdvice(callerID, targetProfileID string) bool {
	return callerID != "" && callerID == targetProfileID
}
