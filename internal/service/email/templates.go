package email

// Email templates using HTML

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .button { display: inline-block; background: #2563eb; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>StaffHub</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">School Staff Portal</p>
    </div>
    <div class="content">
        <h2>Welcome, {{.UserName}}!</h2>
        <p>Your StaffHub account has been created with the email address <strong>{{.Email}}</strong>.</p>
        <p>From your dashboard you can manage your schedule, track attendance, fill in document templates and dictate notes straight into them.</p>
        <p style="text-align: center;">
            <a href="{{.BaseURL}}/login" class="button">Open StaffHub</a>
        </p>
    </div>
    <div class="footer">
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`

const announcementTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .info-box { background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>StaffHub</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">School Announcement</p>
    </div>
    <div class="content">
        <h2>{{.Title}}</h2>
        <div class="info-box">
            <p>{{.Content}}</p>
        </div>
        <p style="color: #6b7280; font-size: 13px;">Published {{.Date}}</p>
    </div>
    <div class="footer">
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`

const substitutionAlertTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #d97706, #b45309); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .warning { background: #fef3c7; border: 1px solid #f59e0b; padding: 15px; border-radius: 8px; margin: 20px 0; }
        .info-row { padding: 8px 0; border-bottom: 1px solid #e5e7eb; }
        .info-label { color: #6b7280; }
    </style>
</head>
<body>
    <div class="header">
        <h1>StaffHub</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Substitution Alert</p>
    </div>
    <div class="content">
        <p>Hello {{.StaffName}},</p>
        <div class="warning">
            <p>One of your classes has been marked as needing a substitute.</p>
        </div>
        <div class="info-row"><span class="info-label">Class:</span> <strong>{{.ClassName}}</strong></div>
        <div class="info-row"><span class="info-label">Day:</span> <strong>{{.Day}}</strong></div>
        <div class="info-row"><span class="info-label">Time:</span> <strong>{{.Time}}</strong></div>
        <div class="info-row"><span class="info-label">Room:</span> <strong>{{.Room}}</strong></div>
    </div>
    <div class="footer">
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`
