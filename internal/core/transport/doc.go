// Package transport 提供进程内 RPC 网络
//
// Network 把地址映射到一组 interfaces.Service，Channel 通过它调用远端方法。
// 请求与回复体都会被复制，调用双方不共享任何内存。
//
// 故障注入:
//
//	net.Enable(addr, false)      // 断开地址：请求与在途回复都会丢失
//	net.SetLatency(5*time.Millisecond)
//	net.SetFilter(func(r transport.Request) error { ... }) // 按请求注入错误
//
// 统计:
//
//	net.CallCount(addr, "hive", "Ping")
package transport
