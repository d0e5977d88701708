package handlers

// User-facing messages returned in response envelopes. The dashboard client
// is Arabic-localized; routing errors stay in English since only tooling
// ever sees them.
const (
	MsgLoginSuccess  = "تم تسجيل الدخول بنجاح"
	MsgLoginFailed   = "اسم المستخدم أو كلمة المرور غير صحيحة"
	MsgLogoutSuccess = "تم تسجيل الخروج بنجاح"
	MsgUnauthorized  = "غير مصرح بالوصول"

	MsgNotificationSent    = "تم إرسال الإشعار بنجاح"
	MsgNotificationDeleted = "تم حذف الإشعار بنجاح"

	MsgRepositoryAdded          = "تم إضافة المستودع بنجاح"
	MsgRepositoryUpdated        = "تم تحديث المستودع بنجاح"
	MsgRepositoryRefreshed      = "تم تحديث المستودع بنجاح"
	MsgRepositoryDeleted        = "تم حذف المستودع بنجاح"
	MsgRepositoryNotFound       = "المستودع غير موجود"
	MsgAllRepositoriesRefreshed = "تم تحديث جميع المستودعات بنجاح"

	MsgCacheCleared    = "تم تنظيف الذاكرة المؤقتة بنجاح"
	MsgDataExported    = "تم تصدير البيانات بنجاح"
	MsgActionCompleted = "تم تنفيذ العملية بنجاح"

	MsgEndpointNotFound = "Endpoint not found"
)
