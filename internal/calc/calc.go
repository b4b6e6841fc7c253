// Package calc содержит чистые вычисления дельт и агрегатов статистики.
//
// Округление везде банковское (half to even), деление на ноль даёт ноль:
// оба свойства — наблюдаемый контракт, на них завязаны потребители API.
package calc

import (
	"math"

	"dodo-statistics/internal/models"
)

const secondsInHour = 3600

// round2 округляет до двух знаков по правилу half to even.
func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}

// RevenueDeltaInPercents возвращает изменение выручки к прошлой неделе в
// процентах. Нулевая выручка прошлой недели даёт ноль.
func RevenueDeltaInPercents(today, weekBefore int) int {
	if weekBefore == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(today)/float64(weekBefore)*100)) - 100
}

// OrdersForCourierCountPerHour возвращает число заказов на курьера в час.
// couriersShiftsDuration задаётся в секундах; нулевая длительность даёт ноль.
func OrdersForCourierCountPerHour(deliveryOrdersCount, couriersShiftsDuration int) float64 {
	if couriersShiftsDuration == 0 {
		return 0
	}
	return round2(float64(deliveryOrdersCount) / (float64(couriersShiftsDuration) / secondsInHour))
}

// DeliveryWithCourierAppPercent возвращает долю заказов, доставленных с
// курьерским приложением, в процентах.
func DeliveryWithCourierAppPercent(ordersWithCourierAppCount, deliveryOrdersCount int) float64 {
	if deliveryOrdersCount == 0 {
		return 0
	}
	return round2(float64(ordersWithCourierAppCount) / float64(deliveryOrdersCount) * 100)
}

// CouriersWorkloadPercent возвращает загрузку курьеров в процентах: долю
// времени смен, проведённую в поездках.
func CouriersWorkloadPercent(tripsDuration, couriersShiftsDuration int) float64 {
	if couriersShiftsDuration == 0 {
		return 0
	}
	return round2(float64(tripsDuration) / float64(couriersShiftsDuration) * 100)
}

// OrdersCountDeltaInPercents возвращает изменение числа заказов к прошлой
// неделе в процентах с точностью до двух знаков.
func OrdersCountDeltaInPercents(today, weekBefore int) float64 {
	if weekBefore == 0 {
		return 0
	}
	return round2(float64(today)*100/float64(weekBefore) - 100)
}

// OrdersWithPhoneNumberPercent возвращает долю заказов с указанным номером
// телефона в процентах.
func OrdersWithPhoneNumberPercent(ordersWithPhoneNumberCount, ordersCount int) float64 {
	if ordersCount == 0 {
		return 0
	}
	return round2(float64(ordersWithPhoneNumberCount) / float64(ordersCount) * 100)
}

// RevenueMetadata суммирует выручку по пиццериям и считает дельту итогов.
func RevenueMetadata(revenues []models.RevenueForTodayAndWeekBefore) models.UnitsRevenueMetadata {
	var totalToday, totalWeekBefore int
	for _, revenue := range revenues {
		totalToday += revenue.Today
		totalWeekBefore += revenue.WeekBefore
	}
	return models.UnitsRevenueMetadata{
		TotalRevenueToday:      totalToday,
		TotalRevenueWeekBefore: totalWeekBefore,
		DeltaFromWeekBefore:    RevenueDeltaInPercents(totalToday, totalWeekBefore),
	}
}

// ExtendDeliveryStatistics дополняет статистику доставки приватного API
// расчётными метриками.
func ExtendDeliveryStatistics(stats models.UnitDeliveryStatistics) models.UnitDeliveryStatisticsExtended {
	return models.UnitDeliveryStatisticsExtended{
		UnitDeliveryStatistics: stats,
		OrdersForCourierCountPerHour: OrdersForCourierCountPerHour(
			stats.DeliveryOrdersCount, stats.CouriersShiftsDuration),
		DeliveryWithCourierAppPercent: DeliveryWithCourierAppPercent(
			stats.OrdersWithCourierAppCount, stats.DeliveryOrdersCount),
		CouriersWorkloadPercent: CouriersWorkloadPercent(
			stats.TripsDuration, stats.CouriersShiftsDuration),
	}
}
