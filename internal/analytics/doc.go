// Package analytics 포트폴리오 성과/리스크 순수 계산기.
//
// 모든 함수는 입력 인자에 대한 순수 함수이며 공유 상태가 없어
// 동기화 없이 동시에 호출해도 안전하다. 연율화 상수 252는 입력
// 시계열이 일별 샘플링이라고 가정한다. 샘플링 주기 감지는 하지
// 않으므로 주별/월별 시계열을 넣으면 연율화 지표가 왜곡된다.
package analytics
