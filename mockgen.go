//go:build gen

package quictls

//go:generate sh -c "go run go.uber.org/mock/mockgen -package quictls -self_package github.com/nextproto/quictls -destination mock_run_context_test.go github.com/nextproto/quictls RunContext"
