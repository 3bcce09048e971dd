package service

import "errors"

var (
	// ErrUsernameTaken username 已被别人占用
	ErrUsernameTaken = errors.New("that username is already taken")
	// ErrTargetNotFound 提交目标 handle 不存在
	ErrTargetNotFound = errors.New("target user not found")
	// ErrAdviceNotFound 指定的留言不存在
	ErrAdviceNotFound = errors.New("advice not found")
	// ErrNotOwner 调用者不是留言的接收者
	ErrNotOwner = errors.New("forbidden")
	// ErrEmptyContent 留言内容为空
	ErrEmptyContent = errors.New("content is required")
	// ErrEmptyUsername handle 为空
	ErrEmptyUsername = errors.New("username is required")
)
