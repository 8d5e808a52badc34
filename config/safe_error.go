package config

// SafeErrorMessage 根据运行模式决定是否向客户端暴露错误详情
// debug 模式下返回原始错误，便于排查；其他模式一律返回 fallback，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "debug" {
		return err.Error()
	}
	return fallback
}
