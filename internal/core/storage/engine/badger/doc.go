// Package badger 提供基于 BadgerDB 的存储引擎实现
//
// 使用示例:
//
//	eng, err := badger.New(engine.DefaultConfig("/data/hive.db"))
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
package badger
